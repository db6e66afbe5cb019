package binaryTree

const (
	DEFAULTSTACKSIZE = 64
)

type Stack[E any] struct { //无限增长的stack
	stack []E
	top   int
}

func InitialStack[E any](size int) Stack[E] {
	if size <= 0 {
		size = DEFAULTSTACKSIZE
	}
	return Stack[E]{
		stack: make([]E, 0, size),
		top:   -1,
	}
}

func (s *Stack[E]) Push(e E) {
	s.stack = append(s.stack, e)
	s.top++
}

func (s *Stack[E]) Pop() (E, bool) {
	var zero E
	if s.top == -1 {
		return zero, false
	}
	e := s.stack[s.top]
	s.stack[s.top] = zero
	s.stack = s.stack[:s.top]
	s.top--
	return e, true
}

func (s *Stack[E]) Peek() (E, bool) {
	if s.top == -1 {
		var zero E
		return zero, false
	}
	return s.stack[s.top], true
}

func (s *Stack[E]) Len() int {
	return s.top + 1
}

func (s *Stack[E]) IsEmpty() bool {
	return s.top == -1
}

// 释放底层数组
func (s *Stack[E]) FreeStack() {
	s.stack = nil
	s.top = -1
}
