package decor

import (
	"context"
	"os"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
)

const (
	// frameInterval is the spinner animation rate.
	frameInterval = 100 * time.Millisecond

	// pollInterval is how often the liveness probe runs.
	pollInterval = 200 * time.Millisecond
)

// Spin animates a spinner beside msg while alive reports true, polling
// on a fixed interval. The line is cleared when the spinner stops. The
// context cancels the wait early.
func (r *Renderer) Spin(ctx context.Context, msg string, alive func() bool) {
	s := spinner.New(spinner.CharSets[14], frameInterval, spinner.WithWriter(r.out))
	s.Suffix = " " + msg
	s.Start()
	defer s.Stop()

	for alive() {
		select {
		case <-ctx.Done():
			return
		case <-time.After(pollInterval):
		}
	}
}

// PIDAlive adapts a process ID into a liveness probe for Spin. The
// probe sends signal 0, which tests existence without disturbing the
// process.
func PIDAlive(pid int) func() bool {
	return func() bool {
		proc, err := os.FindProcess(pid)
		if err != nil {
			return false
		}
		return proc.Signal(syscall.Signal(0)) == nil
	}
}
