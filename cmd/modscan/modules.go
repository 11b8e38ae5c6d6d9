package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/modscan/modscan/pkg/modules"
	"github.com/modscan/modscan/pkg/output"
)

var modulesCmd = &cobra.Command{
	Use:   "modules [workspace]",
	Short: "Build and print the module index of a workspace",
	Long: `Modules walks the workspace for build descriptors (pom.xml, falling
back to build.xml when no Maven module declares a name) and prints the
resulting prefix index: which directory subtree belongs to which
module.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace := "."
		if len(args) > 0 {
			workspace = args[0]
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		index, err := modules.NewDetector().BuildIndex(ctx, workspace)
		if err != nil {
			if stderrors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		entries := make([]output.IndexEntry, 0, index.Len())
		for _, e := range index.Entries() {
			entries = append(entries, output.IndexEntry{Prefix: e.Prefix, Name: e.Name})
		}
		fmt.Fprint(cmd.OutOrStdout(), output.RenderIndex(entries, output.DetectFormat(cmd.OutOrStdout())))
		return nil
	},
}
