package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/foxtail/fxt/internal/jsoncodec"
)

// newPtCmd reproduces the `pt` / `pt read <id>` / `pt write <json>` shell
// surface (spec §6) as non-interactive subcommands. Each invocation builds
// the Node fresh from --config; there is no long-running daemon to attach
// to in this CLI shape, so `pt write` demonstrates the update against a
// freshly wired Node rather than mutating a separately running `run`
// process (spec §1 scopes the interactive shell itself out, not the
// operations it binds to).
func newPtCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:   "pt",
		Short: "list every Point in a Node built from --config",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := buildNodeFromFile(configPath)
			if err != nil {
				return err
			}
			for _, p := range n.Database().All() {
				fmt.Printf("%d\t%s\t%s\tvalid=%v locked=%v\n", p.ID(), p.Name(), p.TypeName(), p.IsValid(), p.IsLocked())
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to the Node JSON document (required)")
	root.MarkPersistentFlagRequired("config")

	read := &cobra.Command{
		Use:   "read <id>",
		Short: "emit the verbose JSON envelope for one Point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := buildNodeFromFile(configPath)
			if err != nil {
				return err
			}
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return err
			}
			obj, err := n.Database().ToJSON(uint32(id), true)
			if err != nil {
				return err
			}
			out, err := jsoncodec.MarshalIndent(obj, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	write := &cobra.Command{
		Use:   "write <json>",
		Short: "apply a partial-update JSON envelope to a Point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := buildNodeFromFile(configPath)
			if err != nil {
				return err
			}
			var obj jsoncodec.Object
			if err := jsoncodec.Unmarshal([]byte(args[0]), &obj); err != nil {
				return err
			}
			if err := n.Database().FromJSON(obj); err != nil {
				return err
			}
			id, _ := obj["id"].(float64)
			result, err := n.Database().ToJSON(uint32(id), true)
			if err != nil {
				return err
			}
			out, err := jsoncodec.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	root.AddCommand(read, write)
	return root
}
