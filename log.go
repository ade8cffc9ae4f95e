package tipview

import (
	"io"

	"github.com/charmbracelet/log"
)

// logger receives tip lifecycle and debug timing messages. It discards
// everything until SetLogger is called.
var logger = log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})

// SetLogger routes tipview's structured log output to l. nil restores the
// discarding logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
	}
	logger = l
}

// Logger returns the logger in use.
func Logger() *log.Logger { return logger }

// NewLogger creates a logger writing to w at level, with timestamps in
// "15:04:05.00" form.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "tipview",
	})
}
