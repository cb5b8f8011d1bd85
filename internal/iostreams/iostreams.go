// Package iostreams wraps the standard streams of the CLI: terminal detection,
// colour decisions per stream, and quiet mode.
package iostreams

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// IOStreams bundles stdin, stdout and stderr with display settings.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	quiet           bool
	colorEnabled    bool
	errColorEnabled bool
	profile         termenv.Profile
}

// New returns IOStreams on the process's standard streams. Colour is decided
// per stream: on for terminals, off when NO_COLOR is set or TERM is "dumb",
// and forced on by CLICOLOR_FORCE=1.
func New() *IOStreams {
	return &IOStreams{
		In:              os.Stdin,
		Out:             os.Stdout,
		ErrOut:          os.Stderr,
		colorEnabled:    wantColor(fileIsTerminal(os.Stdout)),
		errColorEnabled: wantColor(fileIsTerminal(os.Stderr)),
		profile:         termenv.ColorProfile(),
	}
}

// NewTest returns IOStreams on in-memory buffers with colour off. It also
// returns the stdout and stderr buffers.
func NewTest() (*IOStreams, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return &IOStreams{
		In:      &bytes.Buffer{},
		Out:     out,
		ErrOut:  errOut,
		profile: termenv.Ascii,
	}, out, errOut
}

func wantColor(isTTY bool) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if os.Getenv("CLICOLOR_FORCE") == "1" {
		return true
	}
	return isTTY
}

// SetQuiet turns quiet mode on or off. Quiet mode drops Printf and Println.
func (s *IOStreams) SetQuiet(q bool) {
	s.quiet = q
}

// IsQuiet reports whether quiet mode is on.
func (s *IOStreams) IsQuiet() bool {
	return s.quiet
}

// IsTerminal reports whether stdout is a terminal.
func (s *IOStreams) IsTerminal() bool {
	f, ok := s.Out.(*os.File)
	return ok && fileIsTerminal(f)
}

// ErrColorEnabled reports whether stderr output, including logs, is coloured.
func (s *IOStreams) ErrColorEnabled() bool {
	return s.errColorEnabled
}

// Printf writes to Out unless quiet.
func (s *IOStreams) Printf(format string, a ...any) {
	if !s.quiet {
		fmt.Fprintf(s.Out, format, a...)
	}
}

// Println writes a line to Out unless quiet.
func (s *IOStreams) Println(a ...any) {
	if !s.quiet {
		fmt.Fprintln(s.Out, a...)
	}
}

// Errorf writes to ErrOut, even in quiet mode.
func (s *IOStreams) Errorf(format string, a ...any) {
	fmt.Fprintf(s.ErrOut, format, a...)
}

// Success styles text green for stdout.
func (s *IOStreams) Success(text string) string {
	return s.style(s.colorEnabled, text, func(t termenv.Style) termenv.Style {
		return t.Foreground(s.profile.Color("2"))
	})
}

// Failure styles text red for stderr.
func (s *IOStreams) Failure(text string) string {
	return s.style(s.errColorEnabled, text, func(t termenv.Style) termenv.Style {
		return t.Foreground(s.profile.Color("1"))
	})
}

// Warning styles text yellow for stderr.
func (s *IOStreams) Warning(text string) string {
	return s.style(s.errColorEnabled, text, func(t termenv.Style) termenv.Style {
		return t.Foreground(s.profile.Color("3"))
	})
}

// Muted styles text faint for stdout.
func (s *IOStreams) Muted(text string) string {
	return s.style(s.colorEnabled, text, termenv.Style.Faint)
}

// Bold styles text bold for stdout.
func (s *IOStreams) Bold(text string) string {
	return s.style(s.colorEnabled, text, termenv.Style.Bold)
}

func (s *IOStreams) style(enabled bool, text string, apply func(termenv.Style) termenv.Style) string {
	if !enabled {
		return text
	}
	return apply(termenv.String(text)).String()
}

func fileIsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
