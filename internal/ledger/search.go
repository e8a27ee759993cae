package ledger

// SequentialSearch scans records in the given order and returns the
// first record whose Item equals item. Works on any ordering and any
// size; O(n) comparisons.
//
// A miss is a normal outcome, signaled by (Record{}, false), never an
// error.
func SequentialSearch(records []Record, item string) (Record, bool) {
	for _, r := range records {
		if r.Item == item {
			return r, true
		}
	}
	return Record{}, false
}

// SequentialSearchAll returns every record whose Item equals item, in
// input order. Returns nil when nothing matches.
func SequentialSearchAll(records []Record, item string) []Record {
	var found []Record
	for _, r := range records {
		if r.Item == item {
			found = append(found, r)
		}
	}
	return found
}

// BinarySearch locates a record by item name in O(log n) comparisons.
//
// Precondition: records must already be sorted ascending by Item. The
// function does not verify this; on an unsorted sequence the result is
// unreliable (it may miss a present item or return an arbitrary one).
//
// When several records share the target item, whichever matching
// element the descent lands on is returned — not necessarily the first
// occurrence in original order. A miss returns (Record{}, false).
func BinarySearch(records []Record, item string) (Record, bool) {
	lo, hi := 0, len(records)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case records[mid].Item == item:
			return records[mid], true
		case records[mid].Item < item:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return Record{}, false
}
