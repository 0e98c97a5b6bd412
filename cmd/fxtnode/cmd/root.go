// Package cmd implements the fxtnode command tree (spec §6 CLI surface,
// reproduced non-interactively per SPEC_FULL.md item C.5): `run`,
// `validate`, `pt`, `pt read <id>`, `pt write <json>`, `threads`.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/foxtail/fxt/internal/obslog"
)

var (
	cfgFile string
	debug   bool
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fxtnode",
		Short: "FoxTail embedded control-logic runtime host",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := obslog.Init(debug); err != nil {
				return err
			}
			return bindViper(cmd)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "host-config", "", "host config file (Point database capacity, arena sizes); default search: ./fxtnode.yaml")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable development-mode (human-readable, debug-level) logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newPtCmd())
	root.AddCommand(newThreadsCmd())
	return root
}

func bindViper(cmd *cobra.Command) error {
	v := viper.GetViper()
	v.SetConfigName("fxtnode")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return err
		}
	}
	return nil
}
