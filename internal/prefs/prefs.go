// Package prefs remembers the last OpenLP URL the operator connected to.
// The URL is kept as a single line of text so it can be edited by hand.
package prefs

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadURL returns the first line of the file at path, or "" when the file is
// missing, empty or unreadable.
func LoadURL(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return "" // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// SaveURL writes url as the only line of the file at path, creating
// directories as needed.
func SaveURL(path, url string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create url dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(strings.TrimSpace(url)), 0o644); err != nil {
		return fmt.Errorf("write url: %w", err)
	}
	return nil
}
