package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/modscan/modscan/pkg/config"
	"github.com/modscan/modscan/pkg/modules"
)

var (
	resolveWorkspace string
	resolveBuildTool string
	resolveUseIndex  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>...",
	Short: "Print the module each file belongs to",
	Long: `Resolve attributes the given file paths to module names. With
--use-index a descriptor index is built for the workspace first;
otherwise per-file heuristics apply (pom.xml for Maven builds,
build.xml for Ant builds, parent directory name as the fallback).

Files that resolve to no module print an empty name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		detector := modules.NewDetector()

		var index *modules.Index
		if resolveUseIndex {
			var err error
			index, err = detector.BuildIndex(ctx, resolveWorkspace)
			if err != nil {
				if stderrors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
		}

		maven := resolveBuildTool == config.ToolMaven
		ant := resolveBuildTool == config.ToolAnt
		for _, file := range args {
			module := detector.Resolve(file, index, maven, ant)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", module, file)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveWorkspace, "workspace", "w", ".", "Workspace root for --use-index")
	resolveCmd.Flags().StringVarP(&resolveBuildTool, "build-tool", "t", "none", "Build tool of the workspace: maven, ant or none")
	resolveCmd.Flags().BoolVar(&resolveUseIndex, "use-index", false, "Resolve through a precomputed descriptor index")
}
