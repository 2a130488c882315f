package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CandidateItem is one element of the remote collection. Only Title takes
// part in matching; the other fields are carried as the source sends them.
type CandidateItem struct {
	UserID    int    `json:"userId,omitempty"`
	ID        int    `json:"id,omitempty"`
	Title     string `json:"title"`
	Completed bool   `json:"completed,omitempty"`
}

// HistoryEntry records one selected or submitted title.
type HistoryEntry struct {
	Title string `json:"title"`
	Time  string `json:"time"`
}

// HistoryMap maps titles to entries and iterates in insertion order.
// Overwriting an existing title keeps its original position.
// The zero value is an empty map ready to use.
type HistoryMap struct {
	order   []string
	entries map[string]HistoryEntry
}

func NewHistoryMap(entries ...HistoryEntry) *HistoryMap {
	h := &HistoryMap{}
	for _, e := range entries {
		h.Set(e.Title, e)
	}
	return h
}

func (h *HistoryMap) Len() int {
	if h == nil {
		return 0
	}
	return len(h.order)
}

func (h *HistoryMap) Get(title string) (HistoryEntry, bool) {
	if h == nil || h.entries == nil {
		return HistoryEntry{}, false
	}
	e, ok := h.entries[title]
	return e, ok
}

func (h *HistoryMap) Has(title string) bool {
	_, ok := h.Get(title)
	return ok
}

// Set stores entry under title.
func (h *HistoryMap) Set(title string, entry HistoryEntry) {
	if h.entries == nil {
		h.entries = make(map[string]HistoryEntry)
	}
	if _, exists := h.entries[title]; !exists {
		h.order = append(h.order, title)
	}
	h.entries[title] = entry
}

// Delete removes title and reports whether it was present.
func (h *HistoryMap) Delete(title string) bool {
	if h == nil || h.entries == nil {
		return false
	}
	if _, ok := h.entries[title]; !ok {
		return false
	}
	delete(h.entries, title)
	for i, k := range h.order {
		if k == title {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	return true
}

// Titles returns the keys in iteration order.
func (h *HistoryMap) Titles() []string {
	if h == nil {
		return nil
	}
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Entries returns the values in iteration order.
func (h *HistoryMap) Entries() []HistoryEntry {
	if h == nil {
		return nil
	}
	out := make([]HistoryEntry, 0, len(h.order))
	for _, k := range h.order {
		out = append(out, h.entries[k])
	}
	return out
}

func (h *HistoryMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if h != nil {
		for i, k := range h.order {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(h.entries[k])
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping the key order of the document.
// A JSON null decodes to an empty map.
func (h *HistoryMap) UnmarshalJSON(data []byte) error {
	*h = HistoryMap{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("history map: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("history map: expected string key, got %v", tok)
		}
		var entry HistoryEntry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("history map: entry %q: %w", key, err)
		}
		h.Set(key, entry)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
