package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Spinner provides an animated spinner while waiting on the store.
type Spinner struct {
	ui      *UI
	out     io.Writer
	label   string
	done    chan struct{}
	wg      sync.WaitGroup
	started bool
	stopped bool
	mu      sync.Mutex
}

// Spinner animation frames (braille pattern).
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewSpinner creates a new animated spinner writing to stderr, so stdout
// carries only query results.
func (u *UI) NewSpinner(label string) *Spinner {
	return u.NewSpinnerTo(os.Stderr, label)
}

// NewSpinnerTo creates a spinner writing to out.
func (u *UI) NewSpinnerTo(out io.Writer, label string) *Spinner {
	return &Spinner{
		ui:    u,
		out:   out,
		label: label,
		done:  make(chan struct{}),
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	if !s.ui.shouldStyle() {
		// Non-TTY: just print the message once
		fmt.Fprintf(s.out, "%s...", s.label)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		frame := 0
		spinnerStyle := lipgloss.NewStyle().Foreground(ColorPrimary)

		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				fmt.Fprintf(s.out, "\r%s %s...",
					spinnerStyle.Render(spinnerFrames[frame]),
					s.label,
				)
				frame = (frame + 1) % len(spinnerFrames)
			}
		}
	}()
}

// halt stops the animation once; it reports false if the spinner never ran
// or was already stopped.
func (s *Spinner) halt() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started || s.stopped {
		return false
	}
	s.stopped = true
	close(s.done)
	s.wg.Wait()
	return true
}

// Stop stops the spinner without showing a final status.
func (s *Spinner) Stop() {
	if !s.halt() {
		return
	}

	if s.ui.shouldStyle() {
		fmt.Fprint(s.out, "\r\033[K")
	} else {
		fmt.Fprintln(s.out)
	}
}

// Success stops the spinner and shows a success message.
func (s *Spinner) Success(msg string) {
	if !s.halt() {
		return
	}

	if !s.ui.shouldStyle() {
		fmt.Fprintf(s.out, " %s\n", msg)
		return
	}

	fmt.Fprintf(s.out, "\r\033[K%s %s... %s\n",
		StyleSuccess.Render(SymbolSuccess),
		s.label,
		msg,
	)
}

// Error stops the spinner and shows an error message.
func (s *Spinner) Error(msg string) {
	if !s.halt() {
		return
	}

	if !s.ui.shouldStyle() {
		fmt.Fprintf(s.out, " %s\n", msg)
		return
	}

	fmt.Fprintf(s.out, "\r\033[K%s %s... %s\n",
		StyleError.Render(SymbolError),
		s.label,
		StyleError.Render(msg),
	)
}
