package log

import (
	"sync/atomic"

	"github.com/xilinx/vai-q-common/envvar"
)

// EnvVarName is the environmental variable which holds the threshold used by the default logger.
const EnvVarName = "VAI_LOG_LEVEL"

// LevelSource is the source of the threshold for a logger.
type LevelSource interface {
	Level() (Level, error)
	SetLevel(level Level) error
}

// EnvLevel is a LevelSource backed by an environmental variable, the variable is read on every call and never cached.
type EnvLevel struct {
	// Name of the environmental variable, defaults to 'VAI_LOG_LEVEL'.
	Name string

	// Default is returned when the variable is not set.
	Default Level
}

func (e EnvLevel) name() string {
	if e.Name == "" {
		return EnvVarName
	}

	return e.Name
}

// Level returns the threshold from the environment, or the default if it's unset. An error is returned if the
// variable is set to something which isn't an integer.
func (e EnvLevel) Level() (Level, error) {
	val, ok, err := envvar.LookupInt(e.name())
	if err != nil {
		return 0, err
	}

	if !ok {
		return e.Default, nil
	}

	return Level(val), nil
}

// SetLevel writes the given threshold to the environment.
func (e EnvLevel) SetLevel(level Level) error {
	return envvar.SetInt(e.name(), int(level))
}

// LevelVar is an in-process LevelSource, the zero value is 'LevelInfo'.
type LevelVar struct {
	val atomic.Int64
}

// NewLevelVar returns a LevelVar initialized to the given level.
func NewLevelVar(level Level) *LevelVar {
	var v LevelVar
	v.val.Store(int64(level))

	return &v
}

// Level returns the current threshold, it never fails.
func (v *LevelVar) Level() (Level, error) {
	return Level(v.val.Load()), nil
}

// SetLevel updates the threshold.
func (v *LevelVar) SetLevel(level Level) error {
	v.val.Store(int64(level))
	return nil
}
