package node_test

import (
	"testing"

	"github.com/buger/jsonparser"
	"github.com/google/go-cmp/cmp"

	"github.com/fastfhir/fhir-r5-go/model/node"
)

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{``, `{`, `{"a":}`, `{"a":1,}`} {
		if _, err := node.Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%q) expected error", in)
		}
	}
}

func TestValueAccessors(t *testing.T) {
	v, err := node.Parse([]byte(`{"s":"a\"b","b":true,"i":42,"d":1.50,"n":null,"a":[1,"x",null],"o":{"k":"v"}}`))
	if err != nil {
		t.Fatal(err)
	}
	f, ok := v.Object()
	if !ok {
		t.Fatal("expected object")
	}

	if s, ok := f["s"].AsString(); !ok || s != `a"b` {
		t.Errorf("s = %q, %v", s, ok)
	}
	if b, ok := f["b"].AsBool(); !ok || !b {
		t.Errorf("b = %v, %v", b, ok)
	}
	if i, ok := f["i"].AsInt(); !ok || i != 42 {
		t.Errorf("i = %v, %v", i, ok)
	}
	if _, ok := f["d"].AsInt(); ok {
		t.Error("decimal must not read as int")
	}
	if d, ok := f["d"].AsNumber(); !ok || d != "1.50" {
		t.Errorf("d = %q, %v", d, ok)
	}
	if !f["n"].IsNull() || !f["n"].Exists() {
		t.Error("n must be an existing null")
	}
	if f["missing"].Exists() {
		t.Error("missing must not exist")
	}
	if _, ok := f["s"].AsBool(); ok {
		t.Error("string must not read as bool")
	}

	items, ok := f["a"].Array()
	if !ok || len(items) != 3 {
		t.Fatalf("a = %v, %v", items, ok)
	}
	if items[1].Type() != jsonparser.String || !items[2].IsNull() {
		t.Error("unexpected array item types")
	}
	if s, _ := f["o"].Get("k").AsString(); s != "v" {
		t.Errorf("o.k = %q", s)
	}
	if _, ok := f["o"].Array(); ok {
		t.Error("object must not read as array")
	}
}

func TestObjectKeepsOrder(t *testing.T) {
	o := node.NewObject().
		Set("resourceType", "Patient").
		Set("id", "p1").
		Set("active", true).
		SetObject("text", nil).
		SetObject("meta", node.NewObject()).
		SetArray("name", nil).
		Set("value", node.Number("1.50")).
		Set("list", node.Array{"<a>", nil, node.NewObject().Set("k", false)})
	o.Set("id", "p2")

	got, err := o.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"resourceType":"Patient","id":"p2","active":true,"value":1.50,"list":["<a>",null,{"k":false}]}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]string{"resourceType", "id", "active", "value", "list"}, o.Keys()); diff != "" {
		t.Error(diff)
	}
}
