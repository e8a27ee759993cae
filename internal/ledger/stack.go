package ledger

// RecentActivityStack is a LIFO buffer of consumption events used for
// recent-activity inspection and undo: Pop always returns the most
// recently pushed record still present, and pushes and pops interleave
// without disturbing records below the top.
//
// Same concurrency contract as ConsumptionQueue: single caller, no
// locking.
type RecentActivityStack struct {
	records []Record
}

// NewRecentActivityStack creates an empty stack.
func NewRecentActivityStack() *RecentActivityStack {
	return &RecentActivityStack{
		records: make([]Record, 0, 64),
	}
}

// Push appends record to the top of the stack.
func (s *RecentActivityStack) Push(record Record) {
	s.records = append(s.records, record)
}

// Pop removes and returns the top record (most recently pushed, not yet
// removed). Returns (Record{}, false) if the stack is empty.
func (s *RecentActivityStack) Pop() (Record, bool) {
	if len(s.records) == 0 {
		return Record{}, false
	}

	top := len(s.records) - 1
	r := s.records[top]

	// Zero the slot before shrinking, as in ConsumptionQueue.
	s.records[top] = Record{}
	s.records = s.records[:top]

	return r, true
}

// Peek returns the top record without removing it.
// Returns (Record{}, false) if the stack is empty.
func (s *RecentActivityStack) Peek() (Record, bool) {
	if len(s.records) == 0 {
		return Record{}, false
	}
	return s.records[len(s.records)-1], true
}

// Len returns the number of records currently stacked.
func (s *RecentActivityStack) Len() int {
	return len(s.records)
}
