package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/QinLinag/omniponent_bintree/config"
)

var (
	fs         afero.Fs = afero.NewOsFs()
	envFiles   []string
	deleteMode string
	valueType  string
	iterative  bool
	debug      bool
)

// 标准库log的输出转到pterm
type ptermWriter struct {
	printer pterm.PrefixPrinter
}

func (w ptermWriter) Write(p []byte) (int, error) {
	w.printer.Print(string(p))
	return len(p), nil
}

var rootCmd = &cobra.Command{
	Use:           "bintree",
	Short:         "Build, query and print a generic binary tree",
	Long:          `Build, query and print a binary tree that fills the first free slot in level order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			pterm.EnableDebugMessages()
		}
		log.SetOutput(ptermWriter{printer: pterm.Debug})
		log.SetFlags(0)

		con, err := config.Load(fs, envFiles...)
		if err != nil {
			return errors.Wrap(err, "load config")
		}
		flags := cmd.Flags()
		if flags.Changed("delete-mode") {
			con.DeleteMode = deleteMode
		}
		if flags.Changed("type") {
			con.ValueType = valueType
		}
		if flags.Changed("iterative") {
			con.Iterative = iterative
		}
		if err := con.Validate(); err != nil {
			return err
		}
		config.Init(con)
		log.Printf("Config loaded: %+v", con)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "extra .env files to read config from")
	rootCmd.PersistentFlags().StringVar(&deleteMode, "delete-mode", "relink", "what delete does with the deepest node: relink or legacy")
	rootCmd.PersistentFlags().StringVar(&valueType, "type", "int", "type of the tree values: int, float or string")
	rootCmd.PersistentFlags().BoolVar(&iterative, "iterative", false, "use explicit-stack depth first traversals")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print debug logs")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)
}
