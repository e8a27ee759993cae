package ledger

// ConsumptionQueue is a FIFO buffer of consumption events awaiting
// stock deduction. Records come back out in strict insertion order,
// regardless of their field values.
//
// The queue is unbounded; Enqueue always succeeds.
//
// Not safe for unsynchronized concurrent use: the driver calls each
// operation from a single logical thread of control, so the queue
// carries no locking.
type ConsumptionQueue struct {
	records []Record
}

// NewConsumptionQueue creates an empty queue.
func NewConsumptionQueue() *ConsumptionQueue {
	return &ConsumptionQueue{
		records: make([]Record, 0, 64), // Pre-allocate for typical workloads
	}
}

// Enqueue appends record to the tail of the queue.
func (q *ConsumptionQueue) Enqueue(record Record) {
	q.records = append(q.records, record)
}

// Dequeue removes and returns the head record (oldest inserted, not yet
// removed). Returns (Record{}, false) if the queue is empty — callers
// must check the bool before using the record.
func (q *ConsumptionQueue) Dequeue() (Record, bool) {
	if len(q.records) == 0 {
		return Record{}, false
	}

	r := q.records[0]

	// Zero the slot so the backing array does not retain the record's
	// string header until reallocation.
	q.records[0] = Record{}

	if len(q.records) == 1 {
		// Last element - reset to empty slice with original capacity
		q.records = q.records[:0]
	} else {
		q.records = q.records[1:]
	}

	return r, true
}

// Len returns the number of records currently queued.
func (q *ConsumptionQueue) Len() int {
	return len(q.records)
}
