package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "parse and wire a Node JSON document without starting it",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := buildNodeFromFile(configPath)
			if err != nil {
				return err
			}
			fmt.Printf("ok: node %d %q, %d chassis, %d cards, %d points\n",
				n.ID(), n.Name(), len(n.Chassis()), len(n.Cards()), n.Database().Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the Node JSON document (required)")
	cmd.MarkFlagRequired("config")
	return cmd
}
