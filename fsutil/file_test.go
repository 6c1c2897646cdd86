package fsutil

import (
	"errors"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xilinx/vai-q-common/log"
	"github.com/xilinx/vai-q-common/testutil"
)

func TestLoadJSON(t *testing.T) {
	type test struct {
		name     string
		input    any
		expected any
	}

	tests := []test{
		{
			name: "Object",
			input: map[string]any{
				"quantize_layers": []string{"conv2d", "dense"},
				"bit_width":       8,
				"symmetric":       true,
				"calibration":     map[string]any{"method": "percentile", "ratio": 0.999},
				"ignored":         nil,
			},
			expected: map[string]any{
				"quantize_layers": []any{"conv2d", "dense"},
				"bit_width":       int64(8),
				"symmetric":       true,
				"calibration":     map[string]any{"method": "percentile", "ratio": 0.999},
				"ignored":         nil,
			},
		},
		{
			name:     "Array",
			input:    []any{1, "two", false},
			expected: []any{int64(1), "two", false},
		},
		{
			name:     "String",
			input:    "scalar",
			expected: "scalar",
		},
		{
			name:     "Number",
			input:    -1.5,
			expected: -1.5,
		},
		{
			name:     "Exponent",
			input:    []byte(`1e3`),
			expected: float64(1000),
		},
		{
			name:     "LargeInteger",
			input:    []byte(`{"seed": 12345678901234567890, "min": -9223372036854775808}`),
			expected: map[string]any{"seed": uint64(12345678901234567890), "min": int64(math.MinInt64)},
		},
		{
			name:     "HugeInteger",
			input:    []byte(`[123456789012345678901234567890]`),
			expected: []any{hugeInteger(t, "123456789012345678901234567890")},
		},
		{
			name:     "Null",
			input:    nil,
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			contents, ok := test.input.([]byte)
			if !ok {
				contents = testutil.MarshalJSON(t, test.input)
			}

			path := testutil.WriteTempFile(t, "config.json", contents)

			loaded, err := LoadJSON(path)
			require.NoError(t, err)
			require.Equal(t, test.expected, loaded)
		})
	}

	t.Run("Malformed", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "malformed.json", []byte(`{"bit_width": 8,`))

		loaded, err := LoadJSON(path)
		require.Nil(t, loaded)
		require.ErrorContains(t, err, "malformed.json")
		require.ErrorIs(t, err, log.ErrValue)

		var jsonErr *JSONError
		require.ErrorAs(t, err, &jsonErr)
		require.Equal(t, path, jsonErr.Path)
		require.Error(t, jsonErr.Err)
	})

	t.Run("NotUTF8", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "latin1.json", []byte{'"', 0xff, 0xfe, '"'})

		_, err := LoadJSON(path)
		require.ErrorIs(t, err, ErrNotUTF8)
		require.ErrorIs(t, err, log.ErrValue)
		require.ErrorContains(t, err, "latin1.json")
	})

	t.Run("NotExists", func(t *testing.T) {
		_, err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorIs(t, err, os.ErrNotExist)

		var jsonErr *JSONError
		require.False(t, errors.As(err, &jsonErr))
	})
}

func hugeInteger(t *testing.T, s string) *big.Int {
	i, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)

	return i
}

func TestReadJSONFile(t *testing.T) {
	type config struct {
		BitWidth int      `json:"bit_width"`
		Layers   []string `json:"layers"`
	}

	var (
		expected = config{BitWidth: 8, Layers: []string{"conv2d"}}
		path     = testutil.WriteTempFile(t, "config.json", testutil.MarshalJSON(t, expected))
	)

	var actual config
	require.NoError(t, ReadJSONFile(path, &actual))
	require.Equal(t, expected, actual)

	t.Run("Malformed", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "malformed.json", []byte(`{"bit_width": "eight"}`))

		var actual config

		var jsonErr *JSONError
		require.ErrorAs(t, ReadJSONFile(path, &actual), &jsonErr)
		require.Equal(t, path, jsonErr.Path)
	})
}
