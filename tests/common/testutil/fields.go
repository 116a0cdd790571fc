//go:build unit || e2e

package testutil

// Field sets key to value; a nil value removes the key from the payload.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// NullField sends an explicit JSON null, which binding treats differently
// from a missing key for pointer fields.
func NullField(key string) func(m map[string]any) {
	return func(m map[string]any) {
		m[key] = nil
	}
}
