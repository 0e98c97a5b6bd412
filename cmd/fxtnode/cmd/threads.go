package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThreadsCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "threads",
		Short: "list the Chassis threads a Node would run (spec §6 `threads`)",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := buildNodeFromFile(configPath)
			if err != nil {
				return err
			}
			for _, ch := range n.Chassis() {
				fmt.Printf("%d\t%s\n", ch.ID(), ch.Name())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the Node JSON document (required)")
	cmd.MarkFlagRequired("config")
	return cmd
}
