package binaryTree

const (
	DEFAULTQUEUESIZE = 64
)

// 层序遍历用的FIFO队列
type Queue[E any] struct {
	queue []E
	head  int
}

func InitialQueue[E any](size int) Queue[E] {
	if size <= 0 {
		size = DEFAULTQUEUESIZE
	}
	return Queue[E]{
		queue: make([]E, 0, size),
	}
}

func (q *Queue[E]) Put(e E) {
	q.queue = append(q.queue, e)
}

func (q *Queue[E]) Get() (E, bool) {
	var zero E
	if q.head == len(q.queue) {
		return zero, false
	}
	e := q.queue[q.head]
	q.queue[q.head] = zero
	q.head++
	// 队列空了就复用底层数组
	if q.head == len(q.queue) {
		q.queue = q.queue[:0]
		q.head = 0
	}
	return e, true
}

func (q *Queue[E]) Len() int {
	return len(q.queue) - q.head
}

func (q *Queue[E]) IsEmpty() bool {
	return q.Len() == 0
}
