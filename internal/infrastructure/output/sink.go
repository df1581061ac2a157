// Package output writes composed briefs to disk and shows them to the
// operator, through a pager when the terminal allows it.
package output

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Sink persists a composed brief and displays it.
type Sink struct {
	// Path is the output file.
	Path string
	// Pager enables paging through `less -R` when stdout is a terminal.
	Pager bool

	// stdout is swappable for tests.
	stdout io.Writer
}

// NewSink creates a sink writing to path.
func NewSink(path string, pager bool) *Sink {
	return &Sink{Path: path, Pager: pager, stdout: os.Stdout}
}

// Write persists the brief to the output file.
func (s *Sink) Write(text string) error {
	if err := os.WriteFile(s.Path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing prompt file: %w", err)
	}
	return nil
}

// Display shows the brief: through the pager when enabled, stdout is a
// terminal and less is installed, as a plain dump otherwise.
func (s *Sink) Display(text string) error {
	if s.usePager() {
		pager := exec.Command("less", "-R", s.Path)
		pager.Stdin = os.Stdin
		pager.Stdout = os.Stdout
		pager.Stderr = os.Stderr
		if err := pager.Run(); err == nil {
			return nil
		}
		// Pager failed; fall through to the plain dump.
	}

	_, err := fmt.Fprint(s.out(), text)
	return err
}

func (s *Sink) usePager() bool {
	if !s.Pager {
		return false
	}
	info, err := os.Stdout.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return false
	}
	_, err = exec.LookPath("less")
	return err == nil
}

func (s *Sink) out() io.Writer {
	if s.stdout != nil {
		return s.stdout
	}
	return os.Stdout
}
