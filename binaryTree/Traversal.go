package binaryTree

import "golang.org/x/exp/constraints"

// 深度优先遍历（递归）

func PreOrder[T constraints.Ordered](root *Node[T]) []T {
	values := make([]T, 0)
	preOrder(root, &values)
	return values
}

func preOrder[T constraints.Ordered](node *Node[T], values *[]T) {
	if node == nil {
		return
	}
	*values = append(*values, node.value)
	preOrder(node.left, values)
	preOrder(node.right, values)
}

func InOrder[T constraints.Ordered](root *Node[T]) []T {
	values := make([]T, 0)
	inOrder(root, &values)
	return values
}

func inOrder[T constraints.Ordered](node *Node[T], values *[]T) {
	if node == nil {
		return
	}
	inOrder(node.left, values)
	*values = append(*values, node.value)
	inOrder(node.right, values)
}

func PostOrder[T constraints.Ordered](root *Node[T]) []T {
	values := make([]T, 0)
	postOrder(root, &values)
	return values
}

func postOrder[T constraints.Ordered](node *Node[T], values *[]T) {
	if node == nil {
		return
	}
	postOrder(node.left, values)
	postOrder(node.right, values)
	*values = append(*values, node.value)
}

// 深度优先遍历（非递归，显式栈），输出与递归版本一致

func PreOrderIter[T constraints.Ordered](root *Node[T]) []T {
	values := make([]T, 0)
	if root == nil {
		return values
	}
	stack := InitialStack[*Node[T]](0)
	defer stack.FreeStack()
	stack.Push(root)
	for {
		node, succ := stack.Pop()
		if !succ {
			break
		}
		values = append(values, node.value)
		//右孩子先入栈，左孩子先出栈
		if node.right != nil {
			stack.Push(node.right)
		}
		if node.left != nil {
			stack.Push(node.left)
		}
	}
	return values
}

func InOrderIter[T constraints.Ordered](root *Node[T]) []T {
	stack := InitialStack[*Node[T]](0)
	defer stack.FreeStack()
	current := root
	values := make([]T, 0)
	for {
		if current != nil {
			stack.Push(current)
			current = current.left
		} else {
			popNode, succ := stack.Pop()
			if !succ {
				break
			}
			values = append(values, popNode.value)
			current = popNode.right
		}
	}
	return values
}

func PostOrderIter[T constraints.Ordered](root *Node[T]) []T {
	stack := InitialStack[*Node[T]](0)
	defer stack.FreeStack()
	current := root
	var lastVisited *Node[T]
	values := make([]T, 0)
	for current != nil || !stack.IsEmpty() {
		if current != nil {
			stack.Push(current)
			current = current.left
			continue
		}
		top, _ := stack.Peek()
		if top.right != nil && top.right != lastVisited {
			current = top.right
			continue
		}
		values = append(values, top.value)
		lastVisited, _ = stack.Pop()
	}
	return values
}

// 层序遍历

func LevelOrder[T constraints.Ordered](root *Node[T]) []T {
	values := make([]T, 0)
	walkLevelOrder(root, func(node *Node[T]) bool {
		values = append(values, node.value)
		return true
	})
	return values
}

// 逐层从左到右访问，visit返回false时停止
func walkLevelOrder[T constraints.Ordered](root *Node[T], visit func(*Node[T]) bool) {
	if root == nil {
		return
	}
	queue := InitialQueue[*Node[T]](0)
	queue.Put(root)
	for {
		node, ok := queue.Get()
		if !ok {
			return
		}
		if !visit(node) {
			return
		}
		if node.left != nil {
			queue.Put(node.left)
		}
		if node.right != nil {
			queue.Put(node.right)
		}
	}
}
