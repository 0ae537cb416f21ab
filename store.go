package moneytracker

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/etnz/moneytracker/date"
	"github.com/rs/zerolog"
)

// Storage is a string key/value store. Implementations live in package storage.
type Storage interface {
	// Probe reports whether the storage can be read and written.
	Probe() bool
	// Read returns the value of key, ok is false if there is none.
	Read(key string) (value string, ok bool, err error)
	Write(key, value string) error
	Remove(key string) error
}

// State is the outcome of the last Load.
type State int

const (
	Uninitialized State = iota
	Loaded              // a persisted snapshot was reconciled
	Defaulted           // nothing usable was persisted, defaults are in use
	Unavailable         // the storage failed its probe, nothing is persisted
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loaded:
		return "loaded"
	case Defaulted:
		return "defaulted"
	case Unavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Store owns the application snapshot and persists it after every change.
//
// Load and Save never fail: storage problems are logged, recorded in Err,
// and the in-memory snapshot stays usable.
// A Store is safe for concurrent use.
type Store struct {
	// Now is the clock used for defaults and timestamps, time.Now if nil.
	Now func() time.Time
	// Currency is the display currency of a default snapshot,
	// DefaultCurrency if empty.
	Currency string

	mu      sync.Mutex
	storage Storage
	log     zerolog.Logger
	state   State
	err     error
	snap    Snapshot
}

// NewStore returns a Store persisting into storage. Call Load before use.
func NewStore(storage Storage, log zerolog.Logger) *Store {
	return &Store{
		storage: storage,
		log:     log.With().Str("component", "store").Logger(),
	}
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Store) today() date.Date { return date.Of(s.now()) }

func (s *Store) defaults() Snapshot {
	snap := DefaultSnapshot(s.today())
	if s.Currency != "" {
		snap.CurrencyPreference = strings.ToUpper(s.Currency)
	}
	return snap
}

// Load reads and reconciles the persisted snapshot, and returns a copy of it.
func (s *Store) Load() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.snap.Clone()
}

func (s *Store) load() {
	s.err = nil
	if s.storage == nil || !s.storage.Probe() {
		s.state, s.err = Unavailable, ErrStorageUnavailable
		s.snap = s.defaults()
		s.log.Warn().Msg("storage unavailable, changes will not be persisted")
		return
	}
	raw, ok, err := s.storage.Read(SnapshotKey)
	if err != nil {
		s.err = fmt.Errorf("reading snapshot: %w", err)
		s.log.Error().Err(err).Msg("cannot read snapshot, using defaults")
	}
	if err != nil || !ok || strings.TrimSpace(raw) == "" {
		s.state, s.snap = Defaulted, s.defaults()
		return
	}
	snap, ok := Reconcile([]byte(raw), s.today(), s.log)
	if !ok {
		s.state, s.snap = Defaulted, s.defaults()
		return
	}
	s.snap = snap
	s.state = Loaded
	s.log.Debug().
		Int("transactions", len(snap.Transactions)).
		Int("goals", len(snap.Goals)).
		Int("reflections", len(snap.Reflections)).
		Msg("snapshot loaded")
}

// Save replaces the snapshot and persists it. Write failures are logged
// and recorded in Err, the previously persisted value is left untouched.
func (s *Store) Save(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Uninitialized && (s.storage == nil || !s.storage.Probe()) {
		s.state, s.err = Unavailable, ErrStorageUnavailable
	}
	s.snap = snap.Clone()
	s.save()
}

func (s *Store) save() {
	s.snap.SchemaVersion = SchemaVersion
	if s.state == Unavailable {
		s.log.Debug().Msg("storage unavailable, snapshot kept in memory")
		return
	}
	b, err := json.Marshal(s.snap)
	if err != nil {
		s.err = fmt.Errorf("encoding snapshot: %w", err)
		s.log.Error().Err(err).Msg("cannot encode snapshot")
		return
	}
	if err := s.storage.Write(SnapshotKey, string(b)); err != nil {
		s.err = fmt.Errorf("writing snapshot: %w", err)
		s.log.Error().Err(err).Msg("cannot write snapshot")
		return
	}
	s.err = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// State returns the outcome of the last Load.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the last storage error, ErrStorageUnavailable if the probe failed.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// View returns a view model over the current snapshot.
func (s *Store) View() *View {
	return NewView(s.Snapshot(), s.today())
}

// update applies fn to a copy of the snapshot and saves it when fn succeeds.
func (s *Store) update(fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Uninitialized {
		s.load()
	}
	next := s.snap.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.snap = next
	s.save()
	return nil
}

// minPrefix is the shortest id prefix accepted in place of a full id.
const minPrefix = 4

// indexByID finds id in list. A unique prefix of at least minPrefix
// characters is accepted too.
func indexByID[T any](list []T, id string, idOf func(T) string) (int, error) {
	if i := slices.IndexFunc(list, func(v T) bool { return idOf(v) == id }); i >= 0 {
		return i, nil
	}
	found := -1
	if len(id) >= minPrefix {
		for i, v := range list {
			if !strings.HasPrefix(idOf(v), id) {
				continue
			}
			if found >= 0 {
				return -1, fmt.Errorf("%w: %q is ambiguous", ErrNotFound, id)
			}
			found = i
		}
	}
	if found < 0 {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return found, nil
}

func txID(t Transaction) string       { return t.ID }
func goalID(g Goal) string             { return g.ID }
func reflectionID(r Reflection) string { return r.ID }

// AddTransaction appends tx, which must come from NewTransaction or carry an
// id, a day, a known kind and a positive amount.
func (s *Store) AddTransaction(tx Transaction) error {
	if tx.ID == "" {
		return fmt.Errorf("transaction without id")
	}
	if tx.Date.IsZero() {
		return fmt.Errorf("%w: transaction %s has no date", date.ErrInvalidDateKey, tx.ID)
	}
	if tx.Kind != Income && tx.Kind != Expense {
		return fmt.Errorf("%w: %q", ErrInvalidKind, tx.Kind)
	}
	if !tx.Amount.IsPositive() {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidAmount, tx.Amount)
	}
	return s.update(func(snap *Snapshot) error {
		snap.Transactions = append(snap.Transactions, tx)
		return nil
	})
}

// DeleteTransaction removes a transaction and its notes.
func (s *Store) DeleteTransaction(id string) error {
	return s.update(func(snap *Snapshot) error {
		i, err := indexByID(snap.Transactions, id, txID)
		if err != nil {
			return err
		}
		delete(snap.NotesByTransactionID, snap.Transactions[i].ID)
		snap.Transactions = slices.Delete(snap.Transactions, i, i+1)
		return nil
	})
}

// AddTags appends tags to a transaction.
func (s *Store) AddTags(id string, tags ...string) error {
	return s.updateTransaction(id, func(t Transaction) Transaction { return t.WithTags(tags...) })
}

// ReplaceTags replaces the whole tag list of a transaction.
func (s *Store) ReplaceTags(id string, tags ...string) error {
	return s.updateTransaction(id, func(t Transaction) Transaction { return t.ReplaceTags(tags...) })
}

func (s *Store) updateTransaction(id string, fn func(Transaction) Transaction) error {
	return s.update(func(snap *Snapshot) error {
		i, err := indexByID(snap.Transactions, id, txID)
		if err != nil {
			return err
		}
		snap.Transactions[i] = fn(snap.Transactions[i])
		return nil
	})
}

// AddNote appends a note to a transaction.
func (s *Store) AddNote(id, note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return ErrEmptyNote
	}
	return s.update(func(snap *Snapshot) error {
		i, err := indexByID(snap.Transactions, id, txID)
		if err != nil {
			return err
		}
		id := snap.Transactions[i].ID
		snap.NotesByTransactionID[id] = append(slices.Clone(snap.NotesByTransactionID[id]), note)
		return nil
	})
}

// ReplaceNotes replaces the notes of a transaction, an empty list removes them.
func (s *Store) ReplaceNotes(id string, notes []string) error {
	return s.update(func(snap *Snapshot) error {
		i, err := indexByID(snap.Transactions, id, txID)
		if err != nil {
			return err
		}
		id := snap.Transactions[i].ID
		var kept []string
		for _, n := range notes {
			if n = strings.TrimSpace(n); n != "" {
				kept = append(kept, n)
			}
		}
		if len(kept) == 0 {
			delete(snap.NotesByTransactionID, id)
			return nil
		}
		snap.NotesByTransactionID[id] = kept
		return nil
	})
}

// AddGoal appends a goal created with NewGoal.
func (s *Store) AddGoal(g Goal) error {
	if g.ID == "" {
		return fmt.Errorf("goal without id")
	}
	if strings.TrimSpace(g.Title) == "" {
		return ErrEmptyTitle
	}
	return s.update(func(snap *Snapshot) error {
		snap.Goals = append(snap.Goals, g)
		return nil
	})
}

// DeleteGoal removes a goal.
func (s *Store) DeleteGoal(id string) error {
	return s.update(func(snap *Snapshot) error {
		i, err := indexByID(snap.Goals, id, goalID)
		if err != nil {
			return err
		}
		snap.Goals = slices.Delete(snap.Goals, i, i+1)
		return nil
	})
}

// ToggleGoalCompleted flips the completed flag of a goal and returns it.
func (s *Store) ToggleGoalCompleted(id string) (Goal, error) {
	return s.updateGoal(id, func(g Goal) (Goal, error) {
		g.Completed = !g.Completed
		return g, nil
	})
}

// ToggleGoalFavorite flips the favorite flag of a goal and returns it.
func (s *Store) ToggleGoalFavorite(id string) (Goal, error) {
	return s.updateGoal(id, func(g Goal) (Goal, error) {
		g.Favorite = !g.Favorite
		return g, nil
	})
}

// Contribute adds a contribution to a goal and returns it.
func (s *Store) Contribute(id string, amount Amount, on date.Date) (Goal, error) {
	if on.IsZero() {
		on = s.today()
	}
	return s.updateGoal(id, func(g Goal) (Goal, error) { return g.Contribute(amount, on) })
}

func (s *Store) updateGoal(id string, fn func(Goal) (Goal, error)) (Goal, error) {
	var updated Goal
	err := s.update(func(snap *Snapshot) error {
		i, err := indexByID(snap.Goals, id, goalID)
		if err != nil {
			return err
		}
		g, err := fn(snap.Goals[i])
		if err != nil {
			return err
		}
		snap.Goals[i], updated = g, g
		return nil
	})
	return updated, err
}

// AddReflection records a new reflection, newest first.
func (s *Store) AddReflection(text string, mood Mood) (Reflection, error) {
	r, err := NewReflection(text, mood, s.now())
	if err != nil {
		return Reflection{}, err
	}
	err = s.update(func(snap *Snapshot) error {
		snap.Reflections = slices.Insert(snap.Reflections, 0, r)
		return nil
	})
	return r, err
}

// DeleteReflection removes a reflection.
func (s *Store) DeleteReflection(id string) error {
	return s.update(func(snap *Snapshot) error {
		i, err := indexByID(snap.Reflections, id, reflectionID)
		if err != nil {
			return err
		}
		snap.Reflections = slices.Delete(snap.Reflections, i, i+1)
		return nil
	})
}

// SetCurrency sets the display currency, an ISO 4217 code.
func (s *Store) SetCurrency(code string) error {
	code, err := ValidCurrency(code)
	if err != nil {
		return err
	}
	return s.update(func(snap *Snapshot) error {
		snap.CurrencyPreference = code
		return nil
	})
}

// SelectMonth moves the month cursor to a "YYYY-MM" key.
func (s *Store) SelectMonth(key string) error {
	if _, err := date.ParseMonth(key); err != nil {
		return err
	}
	return s.update(func(snap *Snapshot) error {
		snap.SelectedMonth = key
		return nil
	})
}

// PutCategory adds a category, or replaces the one with the same name.
func (s *Store) PutCategory(c Category) error {
	c, err := NewCategory(c.Name, c.Color)
	if err != nil {
		return err
	}
	return s.update(func(snap *Snapshot) error {
		i := slices.IndexFunc(snap.Categories, func(x Category) bool { return strings.EqualFold(x.Name, c.Name) })
		if i < 0 {
			snap.Categories = append(snap.Categories, c)
		} else {
			snap.Categories[i] = c
		}
		return nil
	})
}

// DeleteCategory removes a category definition. Transactions keep their label.
func (s *Store) DeleteCategory(name string) error {
	return s.update(func(snap *Snapshot) error {
		i := slices.IndexFunc(snap.Categories, func(x Category) bool { return strings.EqualFold(x.Name, name) })
		if i < 0 {
			return fmt.Errorf("%w: category %q", ErrNotFound, name)
		}
		snap.Categories = slices.Delete(snap.Categories, i, i+1)
		return nil
	})
}
