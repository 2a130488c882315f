package testutil

import "testing"

func TestCollection(t *testing.T) {
	items := Collection("a", "b")
	if len(items) != 2 || items[1].ID != 2 || items[1].Title != "b" {
		t.Fatalf("unexpected collection %+v", items)
	}
}

func TestHistory(t *testing.T) {
	h := History("x", "y", "x")
	titles := h.Titles()
	if len(titles) != 2 || titles[0] != "x" || titles[1] != "y" {
		t.Fatalf("unexpected titles %v", titles)
	}
	e, ok := h.Get("y")
	if !ok || e.Time != DefaultTime {
		t.Fatalf("unexpected entry %+v", e)
	}
}
