// Package moneytracker is the core of a local-first personal finance and
// wellbeing tracker.
//
// Users record income and expense transactions, save towards goals and
// write daily reflections. Everything lives in a single Snapshot persisted
// by a Store into a key/value Storage.
//
// The package is organized in three layers:
//   - Aggregation: pure functions folding transactions into sums, groupings
//     and a running balance index (SumByKind, GroupByCategory, GroupByMonth,
//     RunningBalanceIndex, Trend).
//   - Persistence: the Store loads a persisted snapshot and reconciles it
//     field by field with the current shape, so that data written by older
//     versions keeps loading. Storage failures never prevent the
//     application from working, they are logged and reported by Store.Err.
//   - Presentation: a View composes aggregates into month views, category
//     breakdowns, goal progress, reports and year closes.
//
// Calendar days are handled by package date. Amounts are exact decimals.
//
// This package is the foundation of the `mt` command-line tool.
package moneytracker
