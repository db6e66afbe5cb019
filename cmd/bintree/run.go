package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/QinLinag/omniponent_bintree/config"
	"github.com/QinLinag/omniponent_bintree/shell"
)

var (
	runValues    []string
	runDeletes   []string
	runTraversal string
	runJSON      bool
)

var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Build a tree from values, delete some and print one traversal",
	Example: `bintree run --values 1,2,3,4,5,6,7 --delete 2 --traversal inorder`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con := config.GetConfig()
		runner, err := shell.NewForType(con.ValueType, cmd.OutOrStdout(), con, nil)
		if err != nil {
			return err
		}

		lines := make([]string, 0, len(runDeletes)+2)
		if len(runValues) > 0 {
			lines = append(lines, "insert "+strings.Join(runValues, ","))
		}
		for _, v := range runDeletes {
			lines = append(lines, "delete "+v)
		}
		output := "display"
		if runJSON {
			output = "json"
		}
		lines = append(lines, strings.TrimSpace(output+" "+runTraversal))

		for _, line := range lines {
			if err := runner.Exec(line); err != nil {
				pterm.Warning.Println(err)
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringSliceVar(&runValues, "values", nil, "values to insert in level order, separated by commas or spaces")
	runCmd.Flags().StringSliceVar(&runDeletes, "delete", nil, "values to delete after inserting")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the traversal as a JSON array")
	runCmd.Flags().StringVar(&runTraversal, "traversal", "", "1|2|3|4 or preorder|inorder|postorder|levelorder (default from config)")
}
