package moneytracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/moneytracker/date"
	"github.com/rs/zerolog"
)

// SchemaVersion is the version stamped on every saved snapshot.
const SchemaVersion = "2"

// SnapshotKey is the storage key of the snapshot document.
const SnapshotKey = "moneytracker/snapshot"

// Snapshot is the whole persisted state of the application.
type Snapshot struct {
	SchemaVersion        string              `json:"schemaVersion"`
	Transactions         []Transaction       `json:"transactions"`
	Goals                []Goal              `json:"goals"`
	Reflections          []Reflection        `json:"reflections"`
	NotesByTransactionID map[string][]string `json:"notesByTransactionId"`
	CurrencyPreference   string              `json:"currencyPreference"`
	SelectedMonth        string              `json:"selectedMonth"`
	Categories           []Category          `json:"categories"`
}

// DefaultSnapshot returns an empty snapshot whose selected month is today's.
// Collections are empty, never nil.
func DefaultSnapshot(today date.Date) Snapshot {
	return Snapshot{
		SchemaVersion:        SchemaVersion,
		Transactions:         []Transaction{},
		Goals:                []Goal{},
		Reflections:          []Reflection{},
		NotesByTransactionID: map[string][]string{},
		CurrencyPreference:   DefaultCurrency,
		SelectedMonth:        today.MonthKey(),
		Categories:           []Category{},
	}
}

// Clone returns a copy of s that shares no collection with it.
func (s Snapshot) Clone() Snapshot {
	c := s
	c.Transactions = slices.Clone(s.Transactions)
	for i := range c.Transactions {
		c.Transactions[i].Tags = slices.Clone(c.Transactions[i].Tags)
	}
	c.Goals = slices.Clone(s.Goals)
	for i := range c.Goals {
		c.Goals[i].Contributions = slices.Clone(c.Goals[i].Contributions)
	}
	c.Reflections = slices.Clone(s.Reflections)
	c.Categories = slices.Clone(s.Categories)
	c.NotesByTransactionID = make(map[string][]string, len(s.NotesByTransactionID))
	for id, notes := range s.NotesByTransactionID {
		c.NotesByTransactionID[id] = slices.Clone(notes)
	}
	return c
}

// Reconcile decodes a persisted snapshot into the current shape.
//
// Each field is decoded on its own: a field that is missing, null or of the
// wrong type takes its default value. Collection elements that fail to
// decode are dropped. The result is stamped with the current SchemaVersion.
// ok is false when raw is not a JSON object at all, then the default
// snapshot is returned.
func Reconcile(raw []byte, today date.Date, log zerolog.Logger) (s Snapshot, ok bool) {
	s = DefaultSnapshot(today)
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		log.Warn().Err(err).Msg("snapshot is not a json object, using defaults")
		return s, false
	}
	if v, ok := fields["schemaVersion"]; ok {
		var old string
		if json.Unmarshal(v, &old) == nil && old != SchemaVersion {
			log.Info().Str("from", old).Str("to", SchemaVersion).Msg("migrating snapshot")
		}
	}

	s.Transactions = decodeList[Transaction](fields, "transactions", log)
	s.Goals = decodeList[Goal](fields, "goals", log)
	s.Reflections = decodeList[Reflection](fields, "reflections", log)
	s.Categories = decodeList[Category](fields, "categories", log)
	s.NotesByTransactionID = decodeNotes(fields, log)

	var cur string
	if decodeField(fields, "currencyPreference", &cur, log) {
		if code, err := ValidCurrency(cur); err == nil {
			s.CurrencyPreference = code
		} else {
			log.Warn().Err(err).Msg("unknown currency preference, using default")
		}
	}
	var month string
	if decodeField(fields, "selectedMonth", &month, log) {
		if _, err := date.ParseMonth(month); err == nil {
			s.SelectedMonth = month
		} else {
			log.Warn().Err(err).Msg("invalid selected month, using default")
		}
	}
	return s, true
}

// isNull reports whether raw is absent or the JSON null.
func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeField decodes fields[name] into v, it reports whether v was set.
func decodeField(fields map[string]json.RawMessage, name string, v any, log zerolog.Logger) bool {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Warn().Err(err).Str("field", name).Msg("wrong type, using default")
		return false
	}
	return true
}

// decodeList decodes a JSON array element by element. It never returns nil.
func decodeList[T any](fields map[string]json.RawMessage, name string, log zerolog.Logger) []T {
	var elements []json.RawMessage
	if !decodeField(fields, name, &elements, log) {
		return []T{}
	}
	list := make([]T, 0, len(elements))
	for i, raw := range elements {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			log.Warn().Err(err).Str("field", name).Int("index", i).Msg("dropping invalid element")
			continue
		}
		list = append(list, v)
	}
	return list
}

// decodeNotes decodes the note map, entries that are not lists of strings are dropped.
func decodeNotes(fields map[string]json.RawMessage, log zerolog.Logger) map[string][]string {
	notes := map[string][]string{}
	var entries map[string]json.RawMessage
	if !decodeField(fields, "notesByTransactionId", &entries, log) {
		return notes
	}
	for _, id := range slices.Sorted(maps.Keys(entries)) {
		var list []string
		if err := json.Unmarshal(entries[id], &list); err != nil {
			log.Warn().Err(err).Str("transaction", id).Msg("dropping invalid notes")
			continue
		}
		if list == nil {
			list = []string{}
		}
		notes[id] = list
	}
	return notes
}

// recordID is a record id stored as a string or, by the former web app, as a
// number.
type recordID string

func (id *recordID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = recordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id %s is neither a string nor a number", b)
	}
	*id = recordID(n)
	return nil
}
