package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemoTable(t *testing.T) {
	for _, iterative := range []bool{false, true} {
		data, err := demoTable(iterative)
		require.NoError(t, err)
		require.Equal(t, []string{"Query", "Result"}, data[0])
		require.Equal(t, []string{"preorder", "1 2 4 5 3 6 7"}, data[1])
		require.Equal(t, []string{"inorder", "4 2 5 1 6 3 7"}, data[2])
		require.Equal(t, []string{"postorder", "4 5 2 6 7 3 1"}, data[3])
		require.Equal(t, []string{"levelorder", "1 2 3 4 5 6 7"}, data[4])
		require.Equal(t, []string{"size", "7"}, data[5])
		require.Equal(t, []string{"height", "3"}, data[6])
		require.Equal(t, []string{"deepest", "7"}, data[7])
		require.Equal(t, []string{"max", "7"}, data[8])
	}
}
