package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetReturnsCachedPointer(t *testing.T) {
	m := NewMetricMap[int]()

	a := m.Get("frames")
	b := m.Get("frames")
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	if !m.Has("frames") {
		t.Error("Has(frames) = false after Get")
	}
	if m.Has("ticks") {
		t.Error("Has(ticks) = true for unregistered key")
	}
}

func TestMetricMapConcurrentRegistration(t *testing.T) {
	m := NewMetricMap[int]()

	var wg sync.WaitGroup
	ptrs := make([]*int, 32)
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ptrs[i] = m.Get("shared")
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(ptrs); i++ {
		if ptrs[i] != ptrs[0] {
			t.Fatalf("goroutine %d got a distinct pointer", i)
		}
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestRegistryLinesSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("physics.ticks").Store(12)
	r.Ints.Get("frame.count").Store(3)
	r.Floats.Get("player.max_height").Set(132.5)
	r.Bools.Get("audio.enabled").Store(true)

	got := r.Lines()
	want := []string{
		"frame.count=3",
		"physics.ticks=12",
		"player.max_height=132.50",
		"audio.enabled=true",
	}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if r.TotalCount() != 4 {
		t.Errorf("TotalCount() = %d, want 4", r.TotalCount())
	}
}

func TestAtomicFloatMax(t *testing.T) {
	var f AtomicFloat
	f.Set(10)

	if got := f.Max(5); got != 10 {
		t.Errorf("Max(5) = %v, want 10", got)
	}
	if got := f.Max(25); got != 25 {
		t.Errorf("Max(25) = %v, want 25", got)
	}
	if f.Get() != 25 {
		t.Errorf("Get() = %v, want 25", f.Get())
	}
}
