// Package prompt implements the confirmation prompter on a terminal.
package prompt

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.rok.dev/rok/internal/core/domain"
	"go.rok.dev/rok/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

var _ ports.Prompter = (*Terminal)(nil)

// Terminal implements ports.Prompter by writing styled questions to a
// terminal and reading y/n answers line by line.
type Terminal struct {
	in          *bufio.Reader
	out         *termenv.Output
	style       Style
	interactive bool
}

// New creates a prompter over explicit streams. The style is passed in
// rather than taken from package state so callers can render differently
// per invocation.
func New(in io.Reader, out io.Writer, interactive bool, style Style) *Terminal {
	return &Terminal{
		in:          bufio.NewReader(in),
		out:         termenv.NewOutput(out, termenv.WithProfile(colorProfile()), termenv.WithTTY(interactive)),
		style:       style,
		interactive: interactive,
	}
}

// NewStdio creates a prompter over stdin/stderr, detecting whether an
// interactive terminal is attached.
func NewStdio(style Style) *Terminal {
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
	return New(os.Stdin, os.Stderr, interactive, style)
}

// Confirm displays the message and blocks until the user answers yes or no.
// An empty answer selects def. It fails with domain.ErrPromptUnavailable
// when no interactive terminal is attached.
func (t *Terminal) Confirm(msg string, def bool) (bool, error) {
	if !t.interactive {
		return false, zerr.With(domain.ErrPromptUnavailable, "message", msg)
	}

	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	for {
		prefix := t.out.String(t.style.Prefix).Foreground(t.out.Color(t.style.PrefixColor))
		_, _ = io.WriteString(t.out, prefix.String()+" "+msg+" "+hint+" ")

		line, err := t.in.ReadString('\n')
		if err != nil && line == "" {
			readErr := zerr.Wrap(err, domain.ErrPromptFailed.Error())
			return false, zerr.With(readErr, "message", msg)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		_, _ = io.WriteString(t.out, "Please answer y or n.\n")
	}
}

// ReadText displays the message and reads one line of free text. An empty
// answer selects def. Like Confirm it requires an interactive terminal.
func (t *Terminal) ReadText(msg, def string) (string, error) {
	if !t.interactive {
		return "", zerr.With(domain.ErrPromptUnavailable, "message", msg)
	}

	prefix := t.out.String(t.style.Prefix).Foreground(t.out.Color(t.style.PrefixColor))
	hint := ""
	if def != "" {
		hint = " (" + def + ")"
	}
	_, _ = io.WriteString(t.out, prefix.String()+" "+msg+hint+" ")

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		readErr := zerr.Wrap(err, domain.ErrPromptFailed.Error())
		return "", zerr.With(readErr, "message", msg)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// colorProfile returns the color profile for prompt rendering, honoring
// NO_COLOR.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
