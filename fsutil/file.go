package fsutil

import (
	stdjson "encoding/json"
	"math/big"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

var (
	// json is configured to be a drop-in replacement for 'encoding/json' and is used to decode into typed values.
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	// jsonNumbers is 'json' but leaves numbers as strings so integers aren't truncated to a 'float64'.
	jsonNumbers = jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		UseNumber:              true,
	}.Froze()
)

// LoadJSON reads and parses the JSON file at the provided path, returning the decoded object, array or scalar.
//
// Objects are returned as 'map[string]any' and arrays as '[]any'. Integers are returned as an 'int64', or a 'uint64'
// or '*big.Int' when they don't fit, all other numbers are returned as a 'float64'. A '*JSONError' is returned if the
// file isn't UTF-8 encoded JSON; errors opening/reading the file are returned unmodified.
func LoadJSON(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, &JSONError{Path: path, Err: ErrNotUTF8}
	}

	var decoded any

	err = jsonNumbers.Unmarshal(data, &decoded)
	if err != nil {
		return nil, &JSONError{Path: path, Err: err}
	}

	decoded, err = convertNumbers(decoded)
	if err != nil {
		return nil, &JSONError{Path: path, Err: err}
	}

	return decoded, nil
}

// convertNumbers recursively replaces each undecoded number in the decoded value with its Go representation.
func convertNumbers(value any) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		for key, elem := range v {
			converted, err := convertNumbers(elem)
			if err != nil {
				return nil, err
			}

			v[key] = converted
		}
	case []any:
		for i, elem := range v {
			converted, err := convertNumbers(elem)
			if err != nil {
				return nil, err
			}

			v[i] = converted
		}
	case stdjson.Number:
		return convertNumber(string(v))
	}

	return value, nil
}

// convertNumber returns the narrowest exact representation of the given JSON number.
func convertNumber(s string) (any, error) {
	if strings.ContainsAny(s, ".eE") {
		return strconv.ParseFloat(s, 64)
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}

	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, nil
	}

	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, &strconv.NumError{Func: "SetString", Num: s, Err: strconv.ErrSyntax}
	}

	return i, nil
}

// ReadJSONFile unmarshals data from the provided file into the given interface, parse failures are returned as a
// '*JSONError'.
func ReadJSONFile(path string, data any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	err = json.NewDecoder(file).Decode(data)
	if err != nil {
		return &JSONError{Path: path, Err: err}
	}

	return nil
}
