package main

import (
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/QinLinag/omniponent_bintree/binaryTree"
	"github.com/QinLinag/omniponent_bintree/config"
	"github.com/QinLinag/omniponent_bintree/shell"
)

var scriptFile string

// display没带参数时弹出选择遍历方式
func surveySelector() shell.Selector {
	return shell.SelectorFunc(func() (string, error) {
		answer := ""
		err := survey.AskOne(&survey.Select{
			Message: "Enter the option of traversal while printing",
			Options: lo.Map(binaryTree.TraversalKinds, func(kind binaryTree.TraversalKind, _ int) string {
				return kind.String()
			}),
			Default: config.GetConfig().GetTraversal().String(),
		}, &answer)
		return strings.TrimSpace(answer), err
	})
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session over one tree",
	Long: `Start an interactive session over one tree.

Commands are read one per line from stdin, or from a script file with --script.
Run "help" inside the session for the command list.`,
	Example: `bintree shell
bintree shell --type string --script words.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con := config.GetConfig()

		if scriptFile != "" {
			f, err := fs.Open(scriptFile)
			if err != nil {
				return errors.Wrapf(err, "open script %s", scriptFile)
			}
			defer f.Close()

			runner, err := shell.NewForType(con.ValueType, cmd.OutOrStdout(), con, nil)
			if err != nil {
				return err
			}
			return runner.Run(f)
		}

		runner, err := shell.NewForType(con.ValueType, cmd.OutOrStdout(), con, surveySelector())
		if err != nil {
			return err
		}
		runner.SetPrompt("bintree> ")
		return runner.Run(os.Stdin)
	},
}

func init() {
	shellCmd.Flags().StringVar(&scriptFile, "script", "", "read commands from this file instead of stdin")
}
