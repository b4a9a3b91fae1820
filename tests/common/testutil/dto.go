//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type nullMarker struct{ _ int }

// Null marks a field that must be sent as an explicit JSON null
var Null = &nullMarker{}

// DtoMap turns a request DTO into a mutable JSON map
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value; nil removes the key and Null sends null
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		switch value {
		case nil:
			delete(m, key)
		case Null:
			m[key] = nil
		default:
			m[key] = value
		}
	}
}
