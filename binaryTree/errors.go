package binaryTree

import "github.com/pkg/errors"

var (
	ErrEmptyTree        = errors.New("Tree is empty")
	ErrNotFound         = errors.New("Element not present in Tree!")
	ErrInvalidTraversal = errors.New("choose a valid option from 1,2,3,4")
)
