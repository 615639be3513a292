// internal/catalog/types_test.go
//
// Scan/Value behaviour of the JSON-backed column types.  Order
// preservation and the NULL fallbacks matter; the storefront gallery
// renders images in stored order.

package catalog

import (
	"reflect"
	"testing"
)

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"b.jpg", "a.jpg", "c.jpg"}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	var out StringList
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("order not preserved: %v != %v", in, out)
	}
}

func TestStringListNil(t *testing.T) {
	var in StringList
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if v != "[]" {
		t.Fatalf("nil list should store as empty array, got %v", v)
	}

	var out StringList
	if err := out.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("SQL NULL should scan to empty list, got %#v", out)
	}
}

func TestStringListScanBytes(t *testing.T) {
	var out StringList
	if err := out.Scan([]byte(`["D155-8470","D85-2210"]`)); err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(out) != 2 || out[0] != "D155-8470" {
		t.Fatalf("unexpected list: %#v", out)
	}
	if err := out.Scan(42); err == nil {
		t.Fatal("expected error scanning int")
	}
}

func TestStringMapRoundTrip(t *testing.T) {
	in := StringMap{"engine": "Cummins 6.7L", "weight": "18t"}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	var out StringMap
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch: %v != %v", in, out)
	}
}

func TestStringMapNil(t *testing.T) {
	var in StringMap
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if v != "{}" {
		t.Fatalf("nil map should store as empty object, got %v", v)
	}

	var out StringMap
	if err := out.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("SQL NULL should scan to empty map, got %#v", out)
	}
}
