package schedule

import (
	"reflect"
	"testing"
	"time"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFlushOrder(t *testing.T) {
	q := NewQueue[string]()
	var ran []string
	add := func(key string, d time.Duration) {
		q.Schedule(key, t0.Add(d), func() { ran = append(ran, key) })
	}
	add("c", 30*time.Millisecond)
	add("a", 10*time.Millisecond)
	add("b", 20*time.Millisecond)
	add("b2", 20*time.Millisecond)

	if n := q.Flush(t0.Add(5 * time.Millisecond)); n != 0 {
		t.Fatalf("early Flush ran %d tasks", n)
	}
	if n := q.Flush(t0.Add(20 * time.Millisecond)); n != 3 {
		t.Fatalf("Flush ran %d tasks, want 3", n)
	}
	if want := []string{"a", "b", "b2"}; !reflect.DeepEqual(ran, want) {
		t.Errorf("ran %v, want %v", ran, want)
	}
	if q.Len() != 1 || !q.Pending("c") {
		t.Errorf("Len() = %d, Pending(c) = %v", q.Len(), q.Pending("c"))
	}
}

func TestScheduleReplaces(t *testing.T) {
	q := NewQueue[int]()
	var ran []string
	if q.Schedule(1, t0.Add(time.Second), func() { ran = append(ran, "stale") }) {
		t.Error("first Schedule reported a replacement")
	}
	if !q.Schedule(1, t0.Add(2*time.Second), func() { ran = append(ran, "fresh") }) {
		t.Error("second Schedule did not report a replacement")
	}
	q.Flush(t0.Add(time.Second))
	if len(ran) != 0 {
		t.Fatalf("replaced task ran: %v", ran)
	}
	q.Flush(t0.Add(2 * time.Second))
	if want := []string{"fresh"}; !reflect.DeepEqual(ran, want) {
		t.Errorf("ran %v, want %v", ran, want)
	}
}

func TestCancel(t *testing.T) {
	q := NewQueue[int]()
	ran := 0
	for i := 0; i < 5; i++ {
		q.Schedule(i, t0.Add(time.Duration(i)*time.Millisecond), func() { ran++ })
	}
	if !q.Cancel(2) {
		t.Fatal("Cancel(2) = false")
	}
	if q.Cancel(2) {
		t.Fatal("second Cancel(2) = true")
	}
	if q.Cancel(42) {
		t.Fatal("Cancel of unknown key = true")
	}
	q.Flush(t0.Add(time.Second))
	if ran != 4 {
		t.Errorf("ran %d tasks, want 4", ran)
	}
}

func TestNext(t *testing.T) {
	q := NewQueue[int]()
	if _, ok := q.Next(); ok {
		t.Fatal("Next() on empty queue reported a task")
	}
	q.Schedule(1, t0.Add(time.Second), func() {})
	q.Schedule(2, t0.Add(time.Millisecond), func() {})
	at, ok := q.Next()
	if !ok || !at.Equal(t0.Add(time.Millisecond)) {
		t.Errorf("Next() = %v, %v", at, ok)
	}
}

func TestTaskReschedulesItself(t *testing.T) {
	q := NewQueue[string]()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			q.Schedule("tick", t0, tick)
		}
	}
	q.Schedule("tick", t0, tick)
	q.Flush(t0)
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestDrain(t *testing.T) {
	q := NewQueue[int]()
	ran := 0
	q.Schedule(1, t0.Add(time.Hour), func() { ran++ })
	q.Schedule(2, t0.Add(2*time.Hour), func() { ran++ })
	if n := q.Drain(); n != 2 || ran != 2 {
		t.Errorf("Drain() = %d, ran = %d", n, ran)
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d", q.Len())
	}
}
