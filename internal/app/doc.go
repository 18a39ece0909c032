// Package app is the composition root of openlplink and owns the control
// loop that keeps the overlay file in step with the OpenLP remote.
//
// # Overview
//
// Run loads configuration, opens the log file, settles on a base URL
// (configured or prompted for), then hands control to a Scheduler that ticks
// until the operator quits with a double Ctrl+C or the context is cancelled.
//
// # Components
//
//   - app.go: Options, Run and URL resolution
//   - controller.go: Controller, the state kept across ticks and the work of
//     one tick
//   - scheduler.go: Scheduler, the fixed-period loop and signal relay
//
// # One Tick
//
//	┌──────────────────────────────┐
//	│ Scheduler tick               │
//	│  ├─> toggle.Advance()        │ apply an expired re-enable delay
//	│  ├─> toggle.Signal() ...     │ pending Ctrl+C events
//	│  ├─> Controller.Update()     │
//	│  │    ├─> Tracker.Refresh()  │ poll + reconcile
//	│  │    ├─> Writer.Write()     │ only when the write-key changed
//	│  │    └─> statusline.Build() │
//	│  ├─> Printer.Print()         │
//	│  └─> sleep rest of period    │ skipped under 50ms
//	└──────────────────────────────┘
//
// # Write-Key
//
// The overlay is rewritten only when (item id, display slide) differs from
// the last successful write. The display slide is state.NoSlide while the
// toggle is not Enabled or the remote reports a blank status, so disabling
// the link writes every row switched off. A failed write leaves the key
// unchanged and raises the "I/O error" tag, and the next tick tries again.
//
// # Timestamp
//
// The timestamp shown beside the status changes when the overlay is
// written or when the status text changes. Repeating ticks leave it alone.
//
// # Signals
//
// Run subscribes to os.Interrupt itself. The Scheduler applies a signal that
// arrives while it sleeps at once and starts the next tick immediately, so a
// double Ctrl+C never waits for the period to elapse. A Terminating toggle
// prints "Shutting down." and Run returns nil.
//
// # Error Handling
//
// Errors returned from Run:
//   - invalid configuration or log setup
//   - a configured URL that is invalid or unreachable
//   - a cancelled URL prompt (ui.ErrCancelled)
//
// Everything that happens inside the loop degrades to the status line:
// connection failures through the client's health tag, item races through
// keeping the previous item, write failures through the I/O tag.
package app
