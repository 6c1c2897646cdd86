package log

import (
	"fmt"
	"io"
	"os"
)

// Sink interface which allows applications to provide custom output for the messages which pass the threshold.
type Sink interface {
	Log(level Level, msg string)
}

// format returns the message as printed by the built-in sinks e.g. "[VAI INFO] calibration complete".
func format(level Level, msg string) string {
	return "[VAI " + level.String() + "] " + msg
}

// WriterSink writes tagged messages, one per line, to the given writer.
type WriterSink struct {
	W io.Writer
}

// Log prefixes the message with the level tag and writes it to the underlying writer. Write errors are ignored.
func (w WriterSink) Log(level Level, msg string) {
	fmt.Fprintln(w.W, format(level, msg))
}

// NewStdoutSink returns a sink which prints all logs into the commandline.
func NewStdoutSink() WriterSink {
	return WriterSink{W: os.Stdout}
}

// nopSink is the no operations sink - ie, a nil sink that doesn't output anything.
type nopSink struct{}

// Log method for the nopSink which does nothing.
func (n nopSink) Log(_ Level, _ string) {}
