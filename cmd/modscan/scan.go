package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modscan/modscan/pkg/config"
	"github.com/modscan/modscan/pkg/modules"
	"github.com/modscan/modscan/pkg/output"
	"github.com/modscan/modscan/pkg/scan"
)

var (
	scanPattern   string
	scanModule    string
	scanBuildTool string
	scanUseIndex  bool
	scanFormat    string
)

var scanCmd = &cobra.Command{
	Use:   "scan [workspace]",
	Short: "Scan a workspace and attribute report files to modules",
	Long: `Scan discovers all files matching the configured Ant-style pattern,
attributes each file to a build module and parses it, collecting
annotations and per-module diagnostics into one report.

The workspace defaults to the current directory. Settings come from
modscan.toml in the workspace and MODSCAN_* environment variables;
flags override both.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace := "."
		if len(args) > 0 {
			workspace = args[0]
		}

		cfg, err := loadConfig(cmd, workspace)
		if err != nil {
			return err
		}

		format, err := output.ParseFormat(cfg.Output.Format)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var runner *scan.Runner
		if cfg.Scan.ModuleName != "" {
			runner = scan.NewRunnerForModule(cfg.Scan.Pattern, lineParser{}, cfg.Scan.ModuleName)
		} else {
			runner = scan.NewRunner(cfg.Scan.Pattern, lineParser{}, cfg.Scan.MavenBuild(), cfg.Scan.AntBuild())
		}

		if cfg.Scan.UseIndex {
			index, err := modules.NewDetector().BuildIndex(ctx, workspace)
			if err != nil {
				if stderrors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
			runner = runner.WithIndex(index)
		}

		result := runner.Run(ctx, workspace)
		fmt.Fprint(cmd.OutOrStdout(), output.RenderResult(result, output.Resolve(format, cmd.OutOrStdout())))
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanPattern, "pattern", "p", "", "Ant-style glob of report files")
	scanCmd.Flags().StringVarP(&scanModule, "module", "m", "", "Fixed module name applied to every file")
	scanCmd.Flags().StringVarP(&scanBuildTool, "build-tool", "t", "", "Build tool of the workspace: maven, ant or none")
	scanCmd.Flags().BoolVar(&scanUseIndex, "use-index", false, "Resolve modules through a precomputed descriptor index")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "", "Output format: auto, term or text")
}

// loadConfig loads the layered configuration and applies flag overrides
func loadConfig(cmd *cobra.Command, workspace string) (*config.Config, error) {
	cfg, err := config.Load(workspace)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("pattern") {
		cfg.Scan.Pattern = scanPattern
	}
	if cmd.Flags().Changed("module") {
		cfg.Scan.ModuleName = scanModule
	}
	if cmd.Flags().Changed("build-tool") {
		cfg.Scan.BuildTool = scanBuildTool
	}
	if cmd.Flags().Changed("use-index") {
		cfg.Scan.UseIndex = scanUseIndex
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = scanFormat
	}
	return cfg, cfg.Validate()
}

// lineParser is the built-in reference parser: one annotation per
// non-blank line. Real deployments plug their own scan.AnnotationParser
// into the library instead.
type lineParser struct{}

func (lineParser) Parse(file, module string) ([]scan.Annotation, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var annotations []scan.Annotation
	for i, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		annotations = append(annotations, scan.Annotation{
			Module:  module,
			File:    file,
			Line:    i + 1,
			Message: strings.TrimSpace(line),
		})
	}
	return annotations, nil
}
