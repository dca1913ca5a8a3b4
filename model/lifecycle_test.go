package model_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/fastfhir/fhir-r5-go/model"
)

func TestRetainRelease(t *testing.T) {
	b, err := newBasic("b1")
	if err != nil {
		t.Fatal(err)
	}
	b.Code = "x"

	if n := model.RefCount(b); n != 1 {
		t.Fatalf("RefCount() = %d, want 1", n)
	}
	if got := model.Retain(b); got != b {
		t.Error("Retain must return its argument")
	}
	model.Release(b)
	if b.destroyed != 0 {
		t.Fatal("destroyed while a reference is held")
	}
	model.Release(b)
	if b.destroyed != 1 || b.Code != "" {
		t.Fatalf("destroyed = %d, code = %q", b.destroyed, b.Code)
	}
}

func TestUseAfterRelease(t *testing.T) {
	uses := map[string]func(r model.Resource){
		"Release":  func(r model.Resource) { model.Release(r) },
		"Retain":   func(r model.Resource) { model.Retain(r) },
		"Validate": func(r model.Resource) { _ = model.Validate(r) },
		"ToJSON":   func(r model.Resource) { model.ToJSON(r) },
		"Clone":    func(r model.Resource) { model.Clone(r) },
		"RefCount": func(r model.Resource) { model.RefCount(r) },
	}
	for name, use := range uses {
		t.Run(name, func(t *testing.T) {
			b, _ := newBasic("b1")
			model.Release(b)

			defer func() {
				err, _ := recover().(error)
				var released *model.ReleasedError
				if !errors.As(err, &released) {
					t.Fatalf("recover() = %v, want *model.ReleasedError", err)
				}
				if released.ID != "b1" || released.Type != model.TypeBasic {
					t.Errorf("released = %+v", released)
				}
			}()
			use(b)
		})
	}
}

func TestConcurrentRetainRelease(t *testing.T) {
	b, _ := newBasic("b1")

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			model.Retain(b)
			model.Release(b)
		}()
	}
	wg.Wait()

	if n := model.RefCount(b); n != 1 {
		t.Fatalf("RefCount() = %d, want 1", n)
	}
	model.Release(b)
	if b.destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", b.destroyed)
	}
}

func TestClone(t *testing.T) {
	b, _ := newBasic("b1")
	b.Code = "active"
	model.Retain(b)

	c := model.Clone(b)
	if n := model.RefCount(c); n != 1 {
		t.Errorf("clone RefCount() = %d, want 1", n)
	}
	c.Code = "changed"
	if b.Code != "active" {
		t.Error("changing the clone changed the original")
	}
	model.Release(b)
	model.Release(b)
	if c.Code != "changed" || c.destroyed != 0 {
		t.Error("releasing the original affected the clone")
	}
	model.Release(c)
}

func TestGenericDispatch(t *testing.T) {
	b, _ := newBasic("b1")
	defer model.Release(b)

	if err := model.Validate(b); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if !model.IsValid(b) {
		t.Error("IsValid() = false")
	}
	if got := model.DisplayName(b); got != "Basic" {
		t.Errorf("DisplayName() = %q, want type name", got)
	}
	if model.IsActive(b) {
		t.Error("IsActive() before code is set")
	}
	b.Code = "active"
	if !model.IsActive(b) {
		t.Error("IsActive() = false")
	}

	out, err := model.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(out), `{"resourceType":"Basic","id":"b1","code":"active"}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestValidateBadID(t *testing.T) {
	b, _ := newBasic("b1")
	defer model.Release(b)

	if err := b.SetID("not valid"); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("SetID() = %v", err)
	}
	if b.ID() != "b1" {
		t.Errorf("ID() = %q after rejected SetID", b.ID())
	}
	if err := b.SetID("b-2.x"); err != nil {
		t.Errorf("SetID() = %v", err)
	}
}
