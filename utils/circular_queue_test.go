package utils

import (
	"slices"
	"testing"
)

func TestCircularQueueOverwritesOldest(t *testing.T) {
	q := NewCircularQueue[int](3)
	for i := 1; i <= 5; i++ {
		if err := q.Append(i); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if got := q.Values(); !slices.Equal(got, []int{3, 4, 5}) {
		t.Fatalf("got %v, want [3 4 5]", got)
	}
	if last, ok := q.Last(); !ok || last != 5 {
		t.Fatalf("last: got %v %v", last, ok)
	}
	if q.Len() != 3 || q.Cap() != 3 {
		t.Fatalf("len=%d cap=%d", q.Len(), q.Cap())
	}

	q.Clear()
	if q.Len() != 0 {
		t.Fatalf("expected empty queue after clear")
	}
	if _, ok := q.Last(); ok {
		t.Fatalf("last on empty queue should report !ok")
	}
	_ = q.Append(9)
	if got := q.Values(); !slices.Equal(got, []int{9}) {
		t.Fatalf("got %v after clear+append", got)
	}
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	q := NewCircularQueue[float64](0)
	if err := q.Append(1); err == nil {
		t.Fatalf("expected error appending to a zero-capacity queue")
	}
}
