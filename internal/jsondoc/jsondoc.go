// Package jsondoc reads, edits and writes JSON documents without decoding
// them into Go types.
//
// Project descriptors and dependency manifests are owned by the .NET
// tooling; only a handful of their fields matter here. Edits go through
// gjson/sjson paths so unknown fields and key order survive untouched.
package jsondoc

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/cruciblehq/sharedfx/internal/paths"
)

var ErrInvalidDocument = errors.New("invalid JSON document")

// Reads the JSON document at path and checks that it is well formed.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, path)
	}
	return data, nil
}

// Writes doc to path, indented. The document is checked before writing so
// a failed edit never replaces a valid file with an invalid one.
func Save(path string, doc []byte) error {
	if !gjson.ValidBytes(doc) {
		return fmt.Errorf("%w: refusing to write %s", ErrInvalidDocument, path)
	}
	return os.WriteFile(path, pretty.Pretty(doc), paths.DefaultFileMode)
}

// Joins object keys into a path, escaping characters that gjson and sjson
// treat as syntax. Dependency and rid names contain dots and slashes.
func Path(keys ...string) string {
	escaped := make([]string, len(keys))
	for i, k := range keys {
		escaped[i] = gjson.Escape(k)
	}
	return strings.Join(escaped, ".")
}

// Returns the keys of the object at path, in document order. A missing or
// non-object value yields no keys.
func Keys(doc []byte, path string) []string {
	value := gjson.GetBytes(doc, path)
	if !value.IsObject() {
		return nil
	}

	var keys []string
	value.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// Sets the string value at path.
func SetString(doc []byte, path, value string) ([]byte, error) {
	out, err := sjson.SetBytes(doc, path, value)
	if err != nil {
		return nil, fmt.Errorf("%w: set %s: %w", ErrInvalidDocument, path, err)
	}
	return out, nil
}

// Replaces the value at path with raw JSON.
func SetRaw(doc []byte, path, raw string) ([]byte, error) {
	out, err := sjson.SetRawBytes(doc, path, []byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: set %s: %w", ErrInvalidDocument, path, err)
	}
	return out, nil
}

// Removes the value at path. A missing path is left as is.
func Delete(doc []byte, path string) ([]byte, error) {
	out, err := sjson.DeleteBytes(doc, path)
	if err != nil {
		return nil, fmt.Errorf("%w: delete %s: %w", ErrInvalidDocument, path, err)
	}
	return out, nil
}
