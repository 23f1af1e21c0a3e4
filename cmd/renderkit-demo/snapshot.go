package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/renderkit-go/renderkit/internal/snapshot"
)

func snapshotCmd() *cobra.Command {
	var traceDir string

	cmd := &cobra.Command{
		Use:   "snapshot <trace-id>",
		Short: "Print a previously captured render trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := snapshot.NewDiskStore(traceDir)
			if err != nil {
				return err
			}
			trace, err := store.Load(args[0])
			if err != nil {
				if errors.Is(err, snapshot.ErrNotFound) {
					return err
				}
				return err
			}

			info("trace %s captured at %s", trace.ID, trace.CapturedAt.Format("2006-01-02T15:04:05Z07:00"))
			for _, m := range trace.Mutations {
				info("%s: %s", m.Op, m.Detail)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&traceDir, "trace-dir", "./renderkit-traces", "directory traces are persisted to")

	return cmd
}
