package strutil_test

import (
	"testing"

	"github.com/fastfhir/fhir-r5-go/utils/ptr"
	"github.com/fastfhir/fhir-r5-go/utils/strutil"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *string
		want int
	}{
		{"nil nil", nil, nil, 0},
		{"nil first", nil, ptr.To("a"), -1},
		{"nil second", ptr.To("a"), nil, 1},
		{"equal", ptr.To("a"), ptr.To("a"), 0},
		{"less", ptr.To("a"), ptr.To("b"), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strutil.Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	if !strutil.IsEmpty(nil) || !strutil.IsEmpty(ptr.To("")) {
		t.Error("nil and empty string must be empty")
	}
	if strutil.IsEmpty(ptr.To(" ")) {
		t.Error("whitespace is not empty")
	}
}

func TestTrimLowerDup(t *testing.T) {
	if strutil.Trim(nil) != nil || strutil.Lower(nil) != nil || strutil.Dup(nil) != nil {
		t.Error("nil input must give nil")
	}
	if got := *strutil.Trim(ptr.To("  a b \t")); got != "a b" {
		t.Errorf("Trim = %q", got)
	}
	if got := *strutil.Lower(ptr.To("PaTiEnT")); got != "patient" {
		t.Errorf("Lower = %q", got)
	}
	orig := ptr.To("x")
	d := strutil.Dup(orig)
	if d == orig || *d != "x" {
		t.Error("Dup must copy")
	}
}
