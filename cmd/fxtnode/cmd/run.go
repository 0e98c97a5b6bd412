package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/foxtail/fxt/internal/node"
	"github.com/foxtail/fxt/internal/obslog"
)

func newRunCmd() *cobra.Command {
	var configPath string
	var shutdownTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "build a Node from a JSON document and run it until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := buildNodeFromFile(configPath)
			if err != nil {
				return err
			}
			if err := node.Initialize(n); err != nil {
				return err
			}
			defer node.Drop()

			if err := n.Start(); err != nil {
				return err
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig

			obslog.L().Info("shutdown requested")
			err = n.Stop(shutdownTimeout)
			obslog.Sync()
			return err
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the Node JSON document (required)")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 5*time.Second, "bound on Chassis thread join during shutdown")
	cmd.MarkFlagRequired("config")
	return cmd
}
