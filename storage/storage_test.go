package storage

import (
	"reflect"
	"testing"
)

func TestMemoryBackend_PutAndGet(t *testing.T) {
	m := NewMemoryBackend()

	m.Put("strategy", "LCRSI2", "factory-ref")

	got, ok := m.Get("strategy", "LCRSI2")
	if !ok {
		t.Fatal("expected entry to exist")
	}
	if got != "factory-ref" {
		t.Errorf("expected %q, got %v", "factory-ref", got)
	}
}

func TestMemoryBackend_GetMissing(t *testing.T) {
	m := NewMemoryBackend()

	if _, ok := m.Get("strategy", "missing"); ok {
		t.Error("expected missing entry")
	}
	if _, ok := m.Get("nonexistent-type", "name"); ok {
		t.Error("expected missing type")
	}
}

func TestMemoryBackend_Overwrite(t *testing.T) {
	m := NewMemoryBackend()

	m.Put("strategy", "X", 1)
	m.Put("strategy", "X", 2)

	got, _ := m.Get("strategy", "X")
	if got != 2 {
		t.Errorf("expected overwritten value 2, got %v", got)
	}
	if names := m.ListNames("strategy"); len(names) != 1 {
		t.Errorf("expected 1 name after overwrite, got %v", names)
	}
}

func TestMemoryBackend_ListNamesInsertionOrder(t *testing.T) {
	m := NewMemoryBackend()

	m.Put("strategy", "C", 1)
	m.Put("strategy", "A", 2)
	m.Put("strategy", "B", 3)

	want := []string{"C", "A", "B"}
	if got := m.ListNames("strategy"); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMemoryBackend_ListNamesEmpty(t *testing.T) {
	m := NewMemoryBackend()

	if got := m.ListNames("strategy"); len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}

func TestMemoryBackend_Has(t *testing.T) {
	m := NewMemoryBackend()

	m.Put("strategy", "X", 1)

	if !m.Has("strategy", "X") {
		t.Error("expected Has to report true")
	}
	if m.Has("strategy", "Y") {
		t.Error("expected Has to report false for missing name")
	}
	if m.Has("nonexistent", "X") {
		t.Error("expected Has to report false for missing type")
	}
}

func TestMemoryBackend_Delete(t *testing.T) {
	m := NewMemoryBackend()

	m.Put("strategy", "X", 1)

	if !m.Delete("strategy", "X") {
		t.Fatal("expected delete to succeed")
	}
	if _, ok := m.Get("strategy", "X"); ok {
		t.Error("expected entry gone after delete")
	}
	if m.Delete("strategy", "X") {
		t.Error("expected repeated delete to report false")
	}
}

func TestMemoryBackend_DeleteCleansEmptyType(t *testing.T) {
	m := NewMemoryBackend()

	m.Put("strategy", "X", 1)
	m.Delete("strategy", "X")

	if types := m.ListTypes(); len(types) != 0 {
		t.Errorf("expected no types after deleting last entry, got %v", types)
	}
}

func TestMemoryBackend_ListTypes(t *testing.T) {
	m := NewMemoryBackend()

	m.Put("strategy", "A", 1)
	m.Put("datasource", "yfinance", 2)

	want := []string{"strategy", "datasource"}
	if got := m.ListTypes(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMemoryBackend_TypesIsolated(t *testing.T) {
	m := NewMemoryBackend()

	m.Put("strategy", "A", 1)
	m.Put("datasource", "A", 2)

	got, _ := m.Get("strategy", "A")
	if got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
	got, _ = m.Get("datasource", "A")
	if got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
}
