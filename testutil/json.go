package testutil

import (
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON marshals the provided interface to JSON fatally terminating the current test in the event of a failure.
func MarshalJSON(t *testing.T, data any) []byte {
	dJSON, err := json.Marshal(data)
	require.NoError(t, err)

	return dJSON
}

// WriteTempFile writes the given contents to a file with the given name inside a temporary directory which is removed
// once the test completes, returning the path to the file.
func WriteTempFile(t *testing.T, name string, contents []byte) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	return path
}
