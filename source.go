package tetris

import "math/rand"

// PieceSource decides which piece type comes next.
type PieceSource interface {
	Next() PieceType
}

type RandomSource struct {
	randomizer *rand.Rand
	types      []PieceType
}

// NewRandomSource draws uniformly over the seven types. Equal seeds give
// equal sequences.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{
		randomizer: rand.New(rand.NewSource(seed)),
		types:      PieceTypes(),
	}
}

func (r *RandomSource) Next() PieceType {
	return r.types[r.randomizer.Intn(len(r.types))]
}

// QueueSource hands out pushed types in order and falls back to its
// fallback source once the queue runs dry.
type QueueSource struct {
	queue    []PieceType
	fallback PieceSource
}

func NewQueueSource(fallback PieceSource, types ...PieceType) *QueueSource {
	q := &QueueSource{fallback: fallback}
	q.Push(types...)
	return q
}

func (q *QueueSource) Next() PieceType {
	if len(q.queue) == 0 {
		return q.fallback.Next()
	}
	t := q.queue[0]
	q.queue = q.queue[1:]
	return t
}

func (q *QueueSource) Push(types ...PieceType) {
	q.queue = append(q.queue, types...)
}

func (q *QueueSource) Len() int {
	return len(q.queue)
}
