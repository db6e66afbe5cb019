package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/QinLinag/omniponent_bintree/binaryTree"
	"github.com/QinLinag/omniponent_bintree/config"
	"github.com/QinLinag/omniponent_bintree/value"
)

// 用1..7建树，每个查询一行
func demoTable(iterative bool) (pterm.TableData, error) {
	var root *binaryTree.Node[int]
	for i := 1; i <= 7; i++ {
		root = binaryTree.Insert(root, i)
	}

	data := pterm.TableData{{"Query", "Result"}}
	for _, kind := range binaryTree.TraversalKinds {
		traverse := binaryTree.Traverse[int]
		if iterative {
			traverse = binaryTree.TraverseIter[int]
		}
		values, err := traverse(root, kind)
		if err != nil {
			return nil, err
		}
		data = append(data, []string{kind.String(), strings.Join(value.FormatList(values), " ")})
	}

	deepest, err := binaryTree.DeepestNode(root)
	if err != nil {
		return nil, err
	}
	maxValue, err := binaryTree.MaxElement(root)
	if err != nil {
		return nil, err
	}
	data = append(data,
		[]string{"size", strconv.Itoa(binaryTree.Size(root))},
		[]string{"height", strconv.Itoa(binaryTree.Height(root))},
		[]string{"deepest", value.Format(deepest)},
		[]string{"max", value.Format(maxValue)},
	)
	return data, nil
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print every traversal and query of the example tree 1..7",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := demoTable(config.GetConfig().Iterative)
		if err != nil {
			return err
		}
		pterm.DefaultSection.Println("Example tree")
		pterm.Println(`       1
    /     \
   2       3
  / \     / \
 4   5   6   7`)
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}
