package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestHistoryMapSetKeepsPosition(t *testing.T) {
	h := NewHistoryMap(
		HistoryEntry{Title: "a", Time: "t1"},
		HistoryEntry{Title: "b", Time: "t2"},
	)
	h.Set("a", HistoryEntry{Title: "a", Time: "t3"})

	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	if got := h.Titles(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Titles = %v", got)
	}
	if e, _ := h.Get("a"); e.Time != "t3" {
		t.Fatalf("expected overwritten time, got %q", e.Time)
	}
}

func TestHistoryMapDelete(t *testing.T) {
	h := NewHistoryMap(
		HistoryEntry{Title: "a"},
		HistoryEntry{Title: "b"},
		HistoryEntry{Title: "c"},
	)
	if !h.Delete("b") {
		t.Fatalf("expected Delete(b) to report true")
	}
	if h.Delete("b") {
		t.Fatalf("expected second Delete(b) to report false")
	}
	if got := h.Titles(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("Titles = %v", got)
	}
}

func TestHistoryMapZeroValue(t *testing.T) {
	var h HistoryMap
	if h.Len() != 0 || h.Has("x") || h.Delete("x") {
		t.Fatalf("zero value should behave as empty")
	}
	h.Set("x", HistoryEntry{Title: "x"})
	if !h.Has("x") {
		t.Fatalf("expected zero value map to accept Set")
	}
}

func TestHistoryMapJSONPreservesOrder(t *testing.T) {
	raw := `{"zeta":{"title":"zeta","time":"1"},"alpha":{"title":"alpha","time":"2"},"mid":{"title":"mid","time":"3"}}`
	var h HistoryMap
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got := h.Titles(); !reflect.DeepEqual(got, []string{"zeta", "alpha", "mid"}) {
		t.Fatalf("Titles = %v", got)
	}
	out, err := json.Marshal(&h)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != raw {
		t.Fatalf("Marshal = %s, want %s", out, raw)
	}
}

func TestHistoryMapJSONEdgeCases(t *testing.T) {
	var h HistoryMap
	if err := json.Unmarshal([]byte("null"), &h); err != nil {
		t.Fatalf("null should decode to empty map: %v", err)
	}
	if h.Len() != 0 {
		t.Fatalf("expected empty map")
	}
	if err := json.Unmarshal([]byte(`["not","an","object"]`), &h); err == nil {
		t.Fatalf("expected error for array input")
	}
	if err := json.Unmarshal([]byte(`{"a":{"title":"a","time":"1"},"a":{"title":"a","time":"2"}}`), &h); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if e, _ := h.Get("a"); h.Len() != 1 || e.Time != "2" {
		t.Fatalf("duplicate key should keep one entry with the last value, got %+v", h.Entries())
	}
	out, err := json.Marshal(&HistoryMap{})
	if err != nil || string(out) != "{}" {
		t.Fatalf("empty map should marshal to {}, got %s (%v)", out, err)
	}
}

func TestCandidateItemDecodesSourceFields(t *testing.T) {
	var items []CandidateItem
	raw := `[{"userId":1,"id":2,"title":"Learn JS","completed":true}]`
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := CandidateItem{UserID: 1, ID: 2, Title: "Learn JS", Completed: true}
	if len(items) != 1 || items[0] != want {
		t.Fatalf("items = %+v", items)
	}
}
