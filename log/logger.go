// Package log provides the level-gated logger used throughout the quantization toolkit.
//
// The threshold is resolved every time a message is logged, by default from the 'VAI_LOG_LEVEL' environmental
// variable:
//
//	-1: print DEBUG, INFO and WARNING
//	 0: print INFO and WARNING (default)
//	 1: print WARNING
package log

import "fmt"

// Options encapsulates the configuration for a Logger.
type Options struct {
	// Level is the source of the threshold, defaults to an 'EnvLevel' reading 'VAI_LOG_LEVEL'.
	Level LevelSource

	// Sink receives messages which pass the threshold, defaults to a sink which discards everything.
	Sink Sink
}

// Logger emits tagged messages to a sink when the threshold supplied by its level source permits.
type Logger struct {
	level LevelSource
	sink  Sink
}

// New returns a Logger using the given options, populating any missing values with their defaults.
func New(options Options) *Logger {
	if options.Level == nil {
		options.Level = EnvLevel{}
	}

	if options.Sink == nil {
		options.Sink = nopSink{}
	}

	return &Logger{level: options.Level, sink: options.Sink}
}

// Level returns the current threshold.
func (l *Logger) Level() (Level, error) {
	return l.level.Level()
}

// SetLevel updates the threshold.
func (l *Logger) SetLevel(level Level) error {
	return l.level.SetLevel(level)
}

// Enabled returns a boolean indicating whether messages at the given level would be emitted.
func (l *Logger) Enabled(level Level) (bool, error) {
	threshold, err := l.level.Level()
	if err != nil {
		return false, err
	}

	return threshold <= level, nil
}

// DebugEnabled returns a boolean indicating whether debug messages would be emitted.
func (l *Logger) DebugEnabled() (bool, error) {
	return l.Enabled(LevelDebug)
}

// Log emits the given message if the threshold permits it. An error is only returned if the threshold could not be
// resolved, in which case nothing is emitted.
func (l *Logger) Log(level Level, msg string) error {
	enabled, err := l.Enabled(level)
	if err != nil || !enabled {
		return err
	}

	l.sink.Log(level, msg)

	return nil
}

// Debug logs the provided message at the debug level.
func (l *Logger) Debug(msg string) error {
	return l.Log(LevelDebug, msg)
}

// Info logs the provided message at the info level.
func (l *Logger) Info(msg string) error {
	return l.Log(LevelInfo, msg)
}

// Warning logs the provided message at the warning level.
func (l *Logger) Warning(msg string) error {
	return l.Log(LevelWarning, msg)
}

// Debugf logs the provided information at the debug level.
func (l *Logger) Debugf(format string, args ...any) error {
	return l.Log(LevelDebug, fmt.Sprintf(format, args...))
}

// Infof logs the provided information at the info level.
func (l *Logger) Infof(format string, args ...any) error {
	return l.Log(LevelInfo, fmt.Sprintf(format, args...))
}

// Warningf logs the provided information at the warning level.
func (l *Logger) Warningf(format string, args ...any) error {
	return l.Log(LevelWarning, fmt.Sprintf(format, args...))
}
