package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// date builds a midnight-UTC calendar date for fixtures.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// rec builds a minimal record for container and search fixtures.
func rec(item string, quantity int) Record {
	consumed := date(2025, time.August, 20)
	return Record{
		Item:       item,
		Quantity:   quantity,
		ConsumedOn: consumed,
		ExpiresOn:  consumed.AddDate(0, 0, 90),
	}
}

func TestConsumptionQueue_EnqueueDequeue(t *testing.T) {
	q := NewConsumptionQueue()

	q.Enqueue(rec("Seringa 5ml", 5))

	got, ok := q.Dequeue()
	require.True(t, ok, "dequeue should succeed")
	assert.Equal(t, "Seringa 5ml", got.Item)
	assert.Equal(t, 5, got.Quantity)
}

func TestConsumptionQueue_FIFO(t *testing.T) {
	q := NewConsumptionQueue()

	// Enqueue A then B: dequeue must return A, then B, then nothing.
	q.Enqueue(rec("A", 1))
	q.Enqueue(rec("B", 2))

	first, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "A", first.Item)

	second, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "B", second.Item)

	_, ok = q.Dequeue()
	assert.False(t, ok, "third dequeue should report empty")
}

func TestConsumptionQueue_Dequeue_Empty(t *testing.T) {
	q := NewConsumptionQueue()

	got, ok := q.Dequeue()
	assert.False(t, ok, "dequeue from empty queue should return false")
	assert.Equal(t, Record{}, got)
}

func TestConsumptionQueue_OrderIgnoresFieldValues(t *testing.T) {
	q := NewConsumptionQueue()

	// Insertion order wins even when quantities and dates are adversarial.
	q.Enqueue(rec("Gaze Estéril", 99))
	q.Enqueue(rec("Agulha Descartável", 1))
	q.Enqueue(rec("Reagente A", 50))

	want := []string{"Gaze Estéril", "Agulha Descartável", "Reagente A"}
	for _, item := range want {
		got, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, item, got.Item)
	}
}

func TestConsumptionQueue_InterleavedEnqueueDequeue(t *testing.T) {
	q := NewConsumptionQueue()

	q.Enqueue(rec("A", 1))
	q.Enqueue(rec("B", 2))

	got, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "A", got.Item)

	q.Enqueue(rec("C", 3))

	got, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "B", got.Item)

	got, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "C", got.Item)
}

func TestConsumptionQueue_Len(t *testing.T) {
	q := NewConsumptionQueue()

	assert.Equal(t, 0, q.Len())

	q.Enqueue(rec("A", 1))
	assert.Equal(t, 1, q.Len())

	q.Enqueue(rec("B", 2))
	assert.Equal(t, 2, q.Len())

	q.Dequeue()
	assert.Equal(t, 1, q.Len())

	q.Dequeue()
	assert.Equal(t, 0, q.Len())
}

func TestConsumptionQueue_DrainAndReuse(t *testing.T) {
	q := NewConsumptionQueue()

	for i := 0; i < 10; i++ {
		q.Enqueue(rec("A", i))
	}
	for i := 0; i < 10; i++ {
		got, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, i, got.Quantity)
	}

	// Drained queue accepts new records and keeps FIFO order.
	q.Enqueue(rec("B", 100))
	got, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "B", got.Item)
}
