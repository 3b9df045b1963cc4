// Package inmemory provides map-backed implementations of the persistence
// ports. It is the default storage mode: a single process keeps every
// aggregate in memory, which matches the lifetime of the dispatch queue and
// keeps the workflow engine runnable with no external dependencies.
//
// The store hands out deep copies built through the aggregates' restore
// constructors, so callers never alias stored state. Writers are serialized
// by the unit of work; mutations become visible as repositories apply them
// and Rollback only ends the transaction scope, it does not undo writes.
package inmemory
