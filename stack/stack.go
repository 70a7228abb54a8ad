package stack

// Stack 后进先出栈，零值即为空栈，可直接使用。
// 非并发安全，多协程访问需调用方加锁。
type Stack[T any] struct {
	l []T
}

func New[T any]() *Stack[T] {
	return &Stack[T]{l: make([]T, 0)}
}

// Push 将 v 压入栈顶
func (s *Stack[T]) Push(v T) {
	s.l = append(s.l, v)
}

// Pop 弹出栈顶元素，栈为空时 ok 为 false
func (s *Stack[T]) Pop() (v T, ok bool) {
	if s.IsEmpty() {
		return v, false
	}
	n := len(s.l) - 1
	v = s.l[n]
	var zero T
	s.l[n] = zero // 释放引用
	s.l = s.l[:n]
	return v, true
}

// Peek 返回栈顶元素但不弹出，栈为空时 ok 为 false。
// 返回值在下一次 Push/Pop 之前有效。
func (s *Stack[T]) Peek() (v T, ok bool) {
	if s.IsEmpty() {
		return v, false
	}
	return s.l[len(s.l)-1], true
}

func (s *Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Stack[T]) Len() int {
	return len(s.l)
}

// Has 栈中是否至少有 n 个元素
func (s *Stack[T]) Has(n int) bool {
	return len(s.l) >= n
}
