package binaryTree

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// 二叉树的所有操作都以根节点为句柄，nil即空树。
// 这不是排序树：新值按层序填入第一个空位。

type DeleteMode int

const (
	// 删除后把最深节点从其父节点上摘掉
	DeleteRelink DeleteMode = iota
	// 只覆盖被删节点的值，最深节点保留在树中（Size不变）
	DeleteLegacy
)

func (m DeleteMode) String() string {
	switch m {
	case DeleteRelink:
		return "relink"
	case DeleteLegacy:
		return "legacy"
	}
	return "unknown"
}

func ParseDeleteMode(s string) (DeleteMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "relink":
		return DeleteRelink, nil
	case "legacy":
		return DeleteLegacy, nil
	}
	return DeleteRelink, errors.Errorf("unknown delete mode %q", s)
}

// 按层序把value放到第一个空位，返回根节点。
// 树中任何位置已有相同的值都不插入（不只是空位之前访问过的节点）。
func Insert[T constraints.Ordered](root *Node[T], value T) *Node[T] {
	root, _ = InsertValue(root, value)
	return root
}

// 同Insert，另外返回是否插入了新节点
func InsertValue[T constraints.Ordered](root *Node[T], value T) (*Node[T], bool) {
	if root == nil {
		return NewNode(value), true
	}
	// 重复的值可能在第一个空位之后，所以先整棵树查一遍
	if Search(root, value) {
		return root, false
	}

	queue := InitialQueue[*Node[T]](0)
	queue.Put(root)
	for {
		node, ok := queue.Get()
		if !ok {
			break
		}
		if node.left != nil {
			queue.Put(node.left)
		} else {
			node.left = NewNode(value)
			return root, true
		}
		if node.right != nil {
			queue.Put(node.right)
		} else {
			node.right = NewNode(value)
			return root, true
		}
	}
	return root, false
}

func Search[T constraints.Ordered](root *Node[T], value T) bool {
	if root == nil {
		return false
	}
	if root.value == value {
		return true
	}
	if Search(root.left, value) {
		return true
	}
	return Search(root.right, value)
}

// 层序查找第一个持有value的节点，没有返回nil
func Find[T constraints.Ordered](root *Node[T], value T) *Node[T] {
	var found *Node[T]
	walkLevelOrder(root, func(node *Node[T]) bool {
		if node.value == value {
			found = node
			return false
		}
		return true
	})
	return found
}

func Size[T constraints.Ordered](root *Node[T]) int {
	if root == nil {
		return 0
	}
	return Size(root.left) + Size(root.right) + 1
}

// 高度按最长路径上的节点数算，不是边数
func Height[T constraints.Ordered](root *Node[T]) int {
	if root == nil {
		return 0
	}
	return max(Height(root.left), Height(root.right)) + 1
}

// 层序遍历的最后一个节点，即最深一层最右边的节点
func DeepestNode[T constraints.Ordered](root *Node[T]) (T, error) {
	deepest, _ := deepestWithParent(root)
	if deepest == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return deepest.value, nil
}

type nodeEntry[T constraints.Ordered] struct {
	node, parent *Node[T]
}

func deepestWithParent[T constraints.Ordered](root *Node[T]) (*Node[T], *Node[T]) {
	if root == nil {
		return nil, nil
	}
	queue := InitialQueue[nodeEntry[T]](0)
	queue.Put(nodeEntry[T]{node: root})
	var last nodeEntry[T]
	for {
		e, ok := queue.Get()
		if !ok {
			break
		}
		last = e
		if e.node.left != nil {
			queue.Put(nodeEntry[T]{node: e.node.left, parent: e.node})
		}
		if e.node.right != nil {
			queue.Put(nodeEntry[T]{node: e.node.right, parent: e.node})
		}
	}
	return last.node, last.parent
}

// 用最深节点的值覆盖被删节点，再按mode处理最深节点。
// 删掉最后一个节点时返回nil
func Delete[T constraints.Ordered](root *Node[T], value T, mode DeleteMode) (*Node[T], error) {
	if !Search(root, value) {
		return root, ErrNotFound
	}

	deepestValue, err := DeepestNode(root)
	if err != nil {
		return root, err
	}
	Find(root, value).SetValue(deepestValue)

	deepest, parent := deepestWithParent(root)
	if mode == DeleteLegacy {
		return root, nil
	}
	switch {
	case parent == nil:
		return nil, nil
	case parent.left == deepest:
		parent.left = nil
	default:
		parent.right = nil
	}
	return root, nil
}

// 深度优先遍历，当前最大值作为参数往下传，不用全局变量
func MaxElement[T constraints.Ordered](root *Node[T]) (T, error) {
	if root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return maxElement(root, root.value), nil
}

func maxElement[T constraints.Ordered](node *Node[T], current T) T {
	if node == nil {
		return current
	}
	if node.value > current {
		current = node.value
	}
	current = maxElement(node.left, current)
	return maxElement(node.right, current)
}

// 后序释放所有节点，返回释放的个数。调用方自己丢掉根节点
func DeleteTree[T constraints.Ordered](root *Node[T]) int {
	if root == nil {
		return 0
	}
	released := DeleteTree(root.left) + DeleteTree(root.right)
	root.left = nil
	root.right = nil
	return released + 1
}
