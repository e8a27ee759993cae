// Package ledger contains the core data structures for consumption
// tracking in a diagnostics facility: the consumption Record, a FIFO
// queue of records awaiting stock deduction, a LIFO stack for
// recent-activity inspection and undo, and pure search and sort
// functions over record sequences.
//
// Every component in this package is single-threaded by design. The
// two containers are not safe for unsynchronized concurrent use; the
// search and sort functions are stateless and never modify their
// inputs.
package ledger
