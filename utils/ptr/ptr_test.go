package ptr_test

import (
	"testing"

	"github.com/fastfhir/fhir-r5-go/utils/ptr"
)

func TestCloneIsIndependent(t *testing.T) {
	a := ptr.To("x")
	b := ptr.Clone(a)
	*b = "y"
	if *a != "x" {
		t.Errorf("original changed to %q", *a)
	}
	if ptr.Clone[string](nil) != nil {
		t.Error("expected nil clone of nil")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *int
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", ptr.To(1), nil, false},
		{"equal", ptr.To(1), ptr.To(1), true},
		{"different", ptr.To(1), ptr.To(2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ptr.Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeref(t *testing.T) {
	if got := ptr.Deref[string](nil); got != "" {
		t.Errorf("Deref(nil) = %q", got)
	}
	if got := ptr.Deref(ptr.To(3)); got != 3 {
		t.Errorf("Deref = %d", got)
	}
}
