package moneytracker

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/etnz/moneytracker/date"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

// A is a helper for test to create amounts from const.
func A(v float64) Amount { return NewAmount(v) }

// D is a helper for test to create days from keys.
func D(key string) date.Date { return date.MustParse(key) }

// T is a helper for test to create a transaction with a stable id.
func T(id string, kind Kind, amount float64, category, on string) Transaction {
	return Transaction{ID: id, Kind: kind, Amount: A(amount), Category: category, Date: D(on)}
}

// cmpOpts compares domain values by meaning.
var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b Amount) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
	cmp.Comparer(func(a, b date.Range) bool { return a == b }),
}

var nopLog = zerolog.New(io.Discard)

var errDisk = errors.New("disk full")

// fakeStorage is an in memory Storage that can be told to fail.
type fakeStorage struct {
	values    map[string]string
	broken    bool // probe fails
	failRead  bool
	failWrite bool
	writes    int
}

func newFakeStorage() *fakeStorage { return &fakeStorage{values: map[string]string{}} }

func (f *fakeStorage) Probe() bool { return !f.broken }

func (f *fakeStorage) Read(key string) (string, bool, error) {
	if f.failRead {
		return "", false, fmt.Errorf("read %s: %w", key, errDisk)
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeStorage) Write(key, value string) error {
	if f.failWrite {
		return fmt.Errorf("write %s: %w", key, errDisk)
	}
	f.writes++
	f.values[key] = value
	return nil
}

func (f *fakeStorage) Remove(key string) error {
	delete(f.values, key)
	return nil
}

// fixedClock returns a Store clock stuck at t.
func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

// mustTime parses an RFC 3339 time or panics.
func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
