package binaryTree

import "golang.org/x/exp/constraints"

// 树中的节点：持有一个值，最多两个孩子
type Node[T constraints.Ordered] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

func NewNode[T constraints.Ordered](value T) *Node[T] {
	return &Node[T]{value: value}
}

func (n *Node[T]) GetValue() T {
	return n.value
}

func (n *Node[T]) SetValue(value T) {
	n.value = value
}

func (n *Node[T]) GetLeft() *Node[T] {
	return n.left
}

func (n *Node[T]) GetRight() *Node[T] {
	return n.right
}

// 左孩子为空直接放入；否则新节点插在中间，原左子树挂到新节点的左边
func (n *Node[T]) InsertLeft(value T) *Node[T] {
	newNode := NewNode(value)
	if n.left != nil {
		newNode.left = n.left
	}
	n.left = newNode
	return newNode
}

// 同InsertLeft，作用于右孩子
func (n *Node[T]) InsertRight(value T) *Node[T] {
	newNode := NewNode(value)
	if n.right != nil {
		newNode.right = n.right
	}
	n.right = newNode
	return newNode
}
