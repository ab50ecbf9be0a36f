package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/idlab-discover/EBPlot-cli/internal/ui"
)

// Logger is a tiny opt-in logger used across internal packages.
// When Writer is nil, logging is disabled.
//
// The output format is:
//
//	<ColoredPrefix> <field>=<subject> <formattedMessage>\n
//
// where <field> defaults to "dataset" and <subject> is trimmed and
// defaults to "(none)".
type Logger struct {
	Writer io.Writer

	PrefixText  string
	PrefixColor string

	// Field names the subject written before the message ("dataset" when empty).
	Field string

	// OmitSubject controls whether the subject field is written.
	OmitSubject bool
}

func (l *Logger) SetWriter(w io.Writer) { l.Writer = w }

func (l *Logger) Enabled() bool { return l != nil && l.Writer != nil }

func (l *Logger) Logf(subject string, format string, args ...any) {
	if l == nil || l.Writer == nil {
		return
	}
	prefix := l.PrefixText
	if prefix == "" {
		prefix = "Log:"
	}
	if l.PrefixColor != "" {
		prefix = ui.Color(prefix, l.PrefixColor)
	}
	msg := fmt.Sprintf(format, args...)
	if l.OmitSubject {
		fmt.Fprintf(l.Writer, "%s %s\n", prefix, msg)
		return
	}

	field := l.Field
	if field == "" {
		field = "dataset"
	}
	s := strings.TrimSpace(subject)
	if s == "" {
		s = "(none)"
	}
	fmt.Fprintf(l.Writer, "%s %s=%s %s\n", prefix, field, s, msg)
}
