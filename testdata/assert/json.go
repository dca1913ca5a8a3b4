// Package assert holds test assertions shared across packages.
package assert

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// JSONEqual reports a diff if expected and actual are not the same JSON
// document. Key order and number formatting are ignored.
func JSONEqual(t testing.TB, expected, actual string) {
	t.Helper()
	e, err := jsonDecode(expected)
	if err != nil {
		t.Fatalf("expected is not JSON: %v", err)
	}
	a, err := jsonDecode(actual)
	if err != nil {
		t.Fatalf("actual is not JSON: %v", err)
	}
	if diff := cmp.Diff(e, a); diff != "" {
		t.Errorf("JSON mismatch (-expected +actual):\n%s", diff)
	}
}

func jsonDecode(input string) (any, error) {
	var v any
	err := json.Unmarshal([]byte(input), &v)
	return v, err
}
