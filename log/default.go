package log

// std is the logger used by the package level functions, it reads its threshold from 'VAI_LOG_LEVEL' and prints to
// standard output.
var std = New(Options{Level: EnvLevel{}, Sink: NewStdoutSink()})

// Default returns the logger used by the package level functions.
func Default() *Logger {
	return std
}

// SetSink replaces the sink used by the default logger, a <nil> sink discards all messages.
//
// NOTE: This function is not concurrency safe, it should be called before the default logger is used.
func SetSink(s Sink) {
	if s == nil {
		s = nopSink{}
	}

	std.sink = s
}

// GetLevel returns the threshold of the default logger.
func GetLevel() (Level, error) {
	return std.Level()
}

// SetLevel writes the threshold of the default logger to the environment.
func SetLevel(level Level) error {
	return std.SetLevel(level)
}

// DebugEnabled returns a boolean indicating whether the default logger would emit debug messages.
func DebugEnabled() (bool, error) {
	return std.DebugEnabled()
}

// Debug logs the provided message at the debug level.
func Debug(msg string) error {
	return std.Debug(msg)
}

// Info logs the provided message at the info level.
func Info(msg string) error {
	return std.Info(msg)
}

// Warning logs the provided message at the warning level.
func Warning(msg string) error {
	return std.Warning(msg)
}

// Debugf logs the provided information at the debug level.
func Debugf(format string, args ...any) error {
	return std.Debugf(format, args...)
}

// Infof logs the provided information at the info level.
func Infof(format string, args ...any) error {
	return std.Infof(format, args...)
}

// Warningf logs the provided information at the warning level.
func Warningf(format string, args ...any) error {
	return std.Warningf(format, args...)
}

// Error returns an error of the given kind with a tagged message; it always fails and never prints.
func Error(msg string, kind error) error {
	return std.Error(msg, kind)
}

// Errorf is the formatted version of 'Error'.
func Errorf(kind error, format string, args ...any) error {
	return std.Errorf(kind, format, args...)
}
