package utils

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// KeyValsToString formats an ordered map into a single bracketed string, keeping insertion order.
// Example: {foo: 1, bar: true} => "[foo=1 bar=true]".
func KeyValsToString(m *orderedmap.OrderedMap[string, any]) string {
	if m == nil || m.Len() == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for el := m.Front(); el != nil; el = el.Next() {
		if el != m.Front() {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", el.Key, el.Value)
	}
	b.WriteByte(']')
	return b.String()
}

// KeyValsToFields copies an ordered map into a plain map, e.g. for structured logger fields.
func KeyValsToFields(m *orderedmap.OrderedMap[string, any]) map[string]any {
	out := make(map[string]any, m.Len())
	for el := m.Front(); el != nil; el = el.Next() {
		out[el.Key] = el.Value
	}
	return out
}
