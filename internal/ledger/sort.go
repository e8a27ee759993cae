package ledger

// MergeSort returns a new slice holding records in ascending order by
// key. The input slice is never modified.
//
// The sort is stable: records with equal keys keep their relative input
// order. O(n log n) comparisons. The only failure mode is an invalid
// key selector, surfaced as *KeyError.
func MergeSort(records []Record, key Key) ([]Record, error) {
	if !key.valid() {
		return nil, NewKeyError(key)
	}

	out := make([]Record, len(records))
	copy(out, records)

	buf := make([]Record, len(records))
	mergeSort(out, buf, key)

	return out, nil
}

// mergeSort sorts records in place, splitting at the midpoint and
// merging the sorted halves through buf. len(buf) == len(records).
func mergeSort(records, buf []Record, key Key) {
	if len(records) <= 1 {
		return
	}

	mid := len(records) / 2
	mergeSort(records[:mid], buf[:mid], key)
	mergeSort(records[mid:], buf[mid:], key)
	merge(records, buf, mid, key)
}

// merge combines the sorted halves records[:mid] and records[mid:] back
// into records, repeatedly taking the smaller-keyed front element.
// Ties take the left element first, which is what makes the sort stable.
func merge(records, buf []Record, mid int, key Key) {
	copy(buf, records)

	i, j := 0, mid
	for k := range records {
		switch {
		case i >= mid:
			records[k] = buf[j]
			j++
		case j >= len(buf):
			records[k] = buf[i]
			i++
		case key.less(buf[j], buf[i]):
			records[k] = buf[j]
			j++
		default:
			records[k] = buf[i]
			i++
		}
	}
}

// QuickSort returns a new slice holding records in ascending order by
// key. The input slice is never modified.
//
// The pivot is the element at the midpoint index; the remaining
// elements are partitioned three ways (less, equal, greater) and the
// less/greater groups are sorted recursively. Average O(n log n)
// comparisons, worst case O(n²). Stability is not guaranteed — the
// equal group happens to keep input order, but that is incidental, not
// a contract. The only failure mode is an invalid key selector,
// surfaced as *KeyError.
func QuickSort(records []Record, key Key) ([]Record, error) {
	if !key.valid() {
		return nil, NewKeyError(key)
	}

	out := make([]Record, len(records))
	copy(out, records)

	scratch := make([]Record, len(records))
	quickSort(out, scratch, key)

	return out, nil
}

// quickSort sorts records in place using a three-way partition staged
// through scratch. Working over explicit subranges of one backing
// buffer keeps allocation linear instead of per-level.
func quickSort(records, scratch []Record, key Key) {
	if len(records) <= 1 {
		return
	}

	pivot := records[len(records)/2]

	n := 0
	for _, r := range records {
		if key.less(r, pivot) {
			scratch[n] = r
			n++
		}
	}
	less := n
	for _, r := range records {
		if !key.less(r, pivot) && !key.less(pivot, r) {
			scratch[n] = r
			n++
		}
	}
	equalEnd := n
	for _, r := range records {
		if key.less(pivot, r) {
			scratch[n] = r
			n++
		}
	}

	copy(records, scratch[:n])

	quickSort(records[:less], scratch[:less], key)
	quickSort(records[equalEnd:], scratch[equalEnd:], key)
}
