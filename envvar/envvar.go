package envvar

import (
	"os"
	"strconv"
)

// LookupInt returns the int value of the environmental variable varName. If the variable is not set it will return
// 0, false, <nil>; if it's set but not an int the conversion error is returned.
func LookupInt(varName string) (int, bool, error) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return 0, false, nil
	}

	val, err := strconv.Atoi(env)
	if err != nil {
		return 0, true, err
	}

	return val, true, nil
}

// SetInt sets the environmental variable varName to the decimal representation of the given value.
func SetInt(varName string, val int) error {
	return os.Setenv(varName, strconv.Itoa(val))
}
