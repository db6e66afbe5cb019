package binaryTree

import (
	"io"

	"golang.org/x/exp/constraints"
)

// 持有根节点，记住删除模式和是否用显式栈遍历
type Tree[T constraints.Ordered] struct {
	root      *Node[T]
	mode      DeleteMode
	iterative bool
}

func NewTree[T constraints.Ordered]() *Tree[T] {
	tree := Tree[T]{}
	tree.Init()
	return &tree
}

func (tree *Tree[T]) Init() {
	tree.root = nil
	tree.mode = DeleteRelink
	tree.iterative = false
}

func (tree *Tree[T]) SetDeleteMode(mode DeleteMode) {
	tree.mode = mode
}

func (tree *Tree[T]) SetIterative(iterative bool) {
	tree.iterative = iterative
}

func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

func (tree *Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// 返回是否真的插入了新节点
func (tree *Tree[T]) Insert(value T) bool {
	root, added := InsertValue(tree.root, value)
	tree.root = root
	return added
}

func (tree *Tree[T]) Search(value T) bool {
	return Search(tree.root, value)
}

func (tree *Tree[T]) Find(value T) *Node[T] {
	return Find(tree.root, value)
}

func (tree *Tree[T]) Size() int {
	return Size(tree.root)
}

func (tree *Tree[T]) Height() int {
	return Height(tree.root)
}

func (tree *Tree[T]) DeepestNode() (T, error) {
	return DeepestNode(tree.root)
}

func (tree *Tree[T]) MaxElement() (T, error) {
	return MaxElement(tree.root)
}

func (tree *Tree[T]) Delete(value T) error {
	root, err := Delete(tree.root, value, tree.mode)
	tree.root = root
	return err
}

func (tree *Tree[T]) Traverse(kind TraversalKind) ([]T, error) {
	return traverse(tree.root, kind, tree.iterative)
}

func (tree *Tree[T]) Display(w io.Writer, kind TraversalKind) error {
	values, err := tree.Traverse(kind)
	if err != nil {
		return err
	}
	return WriteValues(w, values)
}

// 释放整棵树，返回释放的节点数
func (tree *Tree[T]) Clear() int {
	released := DeleteTree(tree.root)
	tree.root = nil
	return released
}
