package binaryTree

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

type TraversalKind int

const (
	PreOrderKind TraversalKind = iota + 1
	InOrderKind
	PostOrderKind
	LevelOrderKind
)

var TraversalKinds = []TraversalKind{PreOrderKind, InOrderKind, PostOrderKind, LevelOrderKind}

func (k TraversalKind) String() string {
	switch k {
	case PreOrderKind:
		return "preorder"
	case InOrderKind:
		return "inorder"
	case PostOrderKind:
		return "postorder"
	case LevelOrderKind:
		return "levelorder"
	}
	return fmt.Sprintf("TraversalKind(%d)", int(k))
}

func (k TraversalKind) Valid() bool {
	return k >= PreOrderKind && k <= LevelOrderKind
}

// 接受菜单选项"1"到"4"，或者遍历方式的名字
func ParseTraversalKind(s string) (TraversalKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "preorder", "pre":
		return PreOrderKind, nil
	case "2", "inorder", "in":
		return InOrderKind, nil
	case "3", "postorder", "post":
		return PostOrderKind, nil
	case "4", "levelorder", "level-order", "level":
		return LevelOrderKind, nil
	}
	return 0, ErrInvalidTraversal
}

// 按kind指定的顺序返回所有值
func Traverse[T constraints.Ordered](root *Node[T], kind TraversalKind) ([]T, error) {
	return traverse(root, kind, false)
}

// 同Traverse，深度优先遍历用显式栈
func TraverseIter[T constraints.Ordered](root *Node[T], kind TraversalKind) ([]T, error) {
	return traverse(root, kind, true)
}

func traverse[T constraints.Ordered](root *Node[T], kind TraversalKind, iterative bool) ([]T, error) {
	if !kind.Valid() {
		return nil, ErrInvalidTraversal
	}
	switch kind {
	case PreOrderKind:
		if iterative {
			return PreOrderIter(root), nil
		}
		return PreOrder(root), nil
	case InOrderKind:
		if iterative {
			return InOrderIter(root), nil
		}
		return InOrder(root), nil
	case PostOrderKind:
		if iterative {
			return PostOrderIter(root), nil
		}
		return PostOrder(root), nil
	}
	return LevelOrder(root), nil
}

// 输出遍历结果，空树输出"Tree is empty"；kind非法时什么都不输出
func Display[T constraints.Ordered](w io.Writer, root *Node[T], kind TraversalKind) error {
	values, err := Traverse(root, kind)
	if err != nil {
		return err
	}
	return WriteValues(w, values)
}

func WriteValues[T any](w io.Writer, values []T) error {
	if len(values) == 0 {
		_, err := fmt.Fprintln(w, ErrEmptyTree.Error())
		return err
	}
	_, err := fmt.Fprintln(w, values)
	return err
}
