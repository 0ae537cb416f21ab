package moneytracker_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/date"
	"github.com/etnz/moneytracker/storage"
	"github.com/rs/zerolog"
)

// TestStorePersistsAcrossBackends checks a fresh store over the same
// backend sees what an earlier store saved.
func TestStorePersistsAcrossBackends(t *testing.T) {
	now := time.Date(2024, time.March, 9, 10, 0, 0, 0, time.Local)
	for _, name := range storage.Backends {
		t.Run(name, func(t *testing.T) {
			backend, err := storage.Open(name, filepath.Join(t.TempDir(), "data"), zerolog.Nop())
			if err != nil {
				t.Fatal(err)
			}
			defer backend.Close()

			s := moneytracker.NewStore(backend, zerolog.Nop())
			s.Now = func() time.Time { return now }
			s.Load()
			if got := s.State(); got != moneytracker.Defaulted {
				t.Fatalf("State() = %v, want defaulted", got)
			}
			tx, err := moneytracker.NewTransaction(moneytracker.Income, moneytracker.NewAmount(100), "Salary", "", date.Of(now))
			if err != nil {
				t.Fatal(err)
			}
			if err := s.AddTransaction(tx); err != nil {
				t.Fatal(err)
			}

			again := moneytracker.NewStore(backend, zerolog.Nop())
			again.Now = s.Now
			again.Load()
			if got := again.State(); got != moneytracker.Loaded {
				t.Fatalf("State() = %v, want loaded (err %v)", got, again.Err())
			}
			if got := again.Snapshot().Transactions; len(got) != 1 || got[0].Category != "Salary" {
				t.Errorf("Transactions = %v", got)
			}
		})
	}
}

func TestStoreOverUnavailableStorage(t *testing.T) {
	s := moneytracker.NewStore(storage.Unavailable(), zerolog.Nop())
	s.Load()
	if s.State() != moneytracker.Unavailable {
		t.Errorf("State() = %v, want unavailable", s.State())
	}
	g, err := moneytracker.NewGoal("Bike", moneytracker.NewAmount(300), moneytracker.GoalOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddGoal(g); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Snapshot().Goals); got != 1 {
		t.Errorf("in-memory snapshot has %d goals, want 1", got)
	}
}
