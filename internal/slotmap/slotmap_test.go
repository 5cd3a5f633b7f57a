package slotmap

import "testing"

func TestInsertGetDelete(t *testing.T) {
	sm := New[string]()
	id := sm.Insert("hello")
	if id == 0 {
		t.Fatalf("Insert returned reserved id 0")
	}
	v, ok := sm.Get(id)
	if !ok || v != "hello" {
		t.Fatalf("Get(%d) = %q, %v", id, v, ok)
	}
	sm.Delete(id)
	if _, ok := sm.Get(id); ok {
		t.Fatalf("expected id %d to be gone after Delete", id)
	}
}

func TestInsertAtReservedZero(t *testing.T) {
	sm := New[int]()
	sm.InsertAt(0, 42)
	v, ok := sm.Get(0)
	if !ok || v != 42 {
		t.Fatalf("Get(0) = %d, %v", v, ok)
	}
}

func TestIDsNeverReused(t *testing.T) {
	sm := New[int]()
	a := sm.Insert(1)
	sm.Delete(a)
	b := sm.Insert(2)
	if a == b {
		t.Fatalf("id reused: a=%d b=%d", a, b)
	}
}
