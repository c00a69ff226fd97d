package utils

import (
	"testing"

	"github.com/elliotchance/orderedmap/v2"
)

func TestKeyValsToString(t *testing.T) {
	m := orderedmap.NewOrderedMap[string, any]()
	if got := KeyValsToString(m); got != "[]" {
		t.Fatalf("empty map: got %q", got)
	}
	m.Set("foo", 1)
	m.Set("bar", true)
	m.Set("baz", "x")
	if got, want := KeyValsToString(m), "[foo=1 bar=true baz=x]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	fields := KeyValsToFields(m)
	if len(fields) != 3 || fields["foo"] != 1 {
		t.Fatalf("unexpected fields %v", fields)
	}
}
