// Package config loads openlplink settings from a TOML file and the
// environment.
//
// # Resolution Order
//
//  1. Built-in defaults (Default)
//  2. The TOML file, ~/.config/openlplink/config.toml unless a path is given;
//     a missing file is not an error
//  3. OPENLPLINK_URL, OPENLPLINK_OVERLAY and OPENLPLINK_LOG
//  4. Command-line flags, applied by the caller
//
// LoadDotEnv exports a .env file into the environment before Load runs,
// without replacing variables that are already set.
//
// # Keys
//
//	url              = "192.168.1.20"        # skips the prompt when set
//	overlay_file     = "~/stream/Text Layer.csv"
//	url_file         = "~/stream/OpenLP URL.txt"
//	log_file         = "~/openlplink.log"    # empty discards logs
//	log_level        = "info"
//	refresh_interval = "166ms"
//	retry_interval   = "5s"
//	request_timeout  = "1s"
//	quit_window      = "1.5s"
//	reenable_delay   = "1s"
//
// Durations use time.ParseDuration syntax and must be positive. Paths accept
// a leading ~ and are made absolute.
//
// # Defaults
//
// The overlay ("Text Layer.csv") and the saved URL ("OpenLP URL.txt") live
// next to the executable.
//
// # Errors
//
// Load fails only when the file exists but cannot be read ("open config",
// "read config"), is not valid TOML ("parse config"), or holds a bad
// duration ("invalid <key>").
package config
