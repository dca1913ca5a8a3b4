package array_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/utils/array"
)

func TestMake(t *testing.T) {
	s, err := array.Make[int](0)
	if err != nil || s != nil {
		t.Errorf("Make(0) = %v, %v; want nil, nil", s, err)
	}

	s, err = array.Make[int](3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 0, 0}, s); diff != "" {
		t.Error(diff)
	}

	_, err = array.Make[int](-1)
	if !errors.Is(err, model.ErrOutOfMemory) {
		t.Errorf("Make(-1) error = %v, want out of memory", err)
	}

	_, err = array.Make[[1024]byte](1 << 40)
	if !errors.Is(err, model.ErrOutOfMemory) {
		t.Errorf("huge Make error = %v, want out of memory", err)
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		n    int
		want []string
	}{
		{"grow zero fills", []string{"a"}, 3, []string{"a", "", ""}},
		{"shrink", []string{"a", "b", "c"}, 2, []string{"a", "b"}},
		{"to zero frees", []string{"a"}, 0, nil},
		{"from nil", nil, 1, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := array.Resize(tt.in, tt.n)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestResizeDoesNotAlias(t *testing.T) {
	in := []int{1, 2}
	out, _ := array.Resize(in, 2)
	out[0] = 9
	if in[0] != 1 {
		t.Error("resized slice aliases input")
	}
}

func TestAddRemove(t *testing.T) {
	var s []string
	s = array.Add(s, "a")
	s = array.Add(s, "b")
	s = array.Add(s, "c")

	s, err := array.Remove(s, 1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "c"}, s); diff != "" {
		t.Error(diff)
	}

	if _, err := array.Remove(s, 5); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("Remove out of range error = %v", err)
	}

	s, _ = array.Remove(s, 0)
	s, _ = array.Remove(s, 0)
	if s != nil {
		t.Errorf("expected nil after removing all, got %v", s)
	}
}
