package log

import (
	"fmt"
	"strconv"
)

// Level is the verbosity threshold of the logger; a message is emitted when the active threshold is less than or equal
// to the level of the message.
type Level int

const (
	// LevelDebug includes fine-grained informational events that are the most useful when debugging quantization.
	LevelDebug Level = -1

	// LevelInfo includes informational messages that highlight the progress of the toolkit; this is the default.
	LevelInfo Level = 0

	// LevelWarning includes expected but potentially harmful/interesting events.
	LevelWarning Level = 1

	// LevelError is the level at which errors are reported, it's never used to gate output.
	LevelError Level = 2
)

// String returns the tag used when printing messages at this level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	}

	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts the given integer string into a Level, the conversion error is returned unmodified so that
// callers may inspect it.
func ParseLevel(s string) (Level, error) {
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}

	return Level(val), nil
}
