package renderer

import (
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout. Numbers are
// formatted with an English printer so large counts get thousands separators.
type DefaultLogger struct {
	printer *message.Printer
	out     io.Writer
}

// Printf implements core.Logger
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	dl.printer.Fprintf(dl.out, format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return NewWriterLogger(os.Stdout)
}

// NewWriterLogger creates a logger that writes to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &DefaultLogger{
		printer: message.NewPrinter(language.English),
		out:     w,
	}
}
