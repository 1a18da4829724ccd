// Package notify surfaces the outcome of user actions, the terminal
// equivalent of the admin UI's success/error toasts. Page controllers talk to
// the Notifier interface; tests swap in the Recorder.
package notify

import (
	"fmt"
	"io"
	"os"
)

// Notifier receives the outcome messages of user actions.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

// ------------------- Terminal -------------------

// Terminal prints notifications to a writer, stdout by default.
type Terminal struct {
	Out io.Writer
}

// NewTerminal returns a Notifier writing to stdout.
func NewTerminal() *Terminal {
	return &Terminal{Out: os.Stdout}
}

func (t *Terminal) Success(msg string) {
	fmt.Fprintf(t.Out, "✔ %s\n", msg)
}

func (t *Terminal) Failure(msg string) {
	fmt.Fprintf(t.Out, "✖ %s\n", msg)
}

// ------------------- Recorder -------------------

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	Successes []string
	Failures  []string
}

func (r *Recorder) Success(msg string) { r.Successes = append(r.Successes, msg) }
func (r *Recorder) Failure(msg string) { r.Failures = append(r.Failures, msg) }

// Reset clears recorded messages.
func (r *Recorder) Reset() {
	r.Successes = nil
	r.Failures = nil
}
