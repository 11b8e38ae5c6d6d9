package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modscan/modscan/pkg/config"
)

var genconfigEffective bool

var genconfigCmd = &cobra.Command{
	Use:   "genconfig [workspace]",
	Short: "Print a commented default configuration file",
	Long: `Genconfig prints the default modscan.toml with every value commented
out. Redirect it into the workspace root and uncomment what you want
to change:

  modscan genconfig > modscan.toml

With --effective the merged configuration of the given workspace is
printed instead (defaults, workspace file and environment applied).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !genconfigEffective {
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
			return nil
		}

		workspace := "."
		if len(args) > 0 {
			workspace = args[0]
		}
		cfg, err := config.Load(workspace)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), cfg.Dump())
		return nil
	},
}

func init() {
	genconfigCmd.Flags().BoolVar(&genconfigEffective, "effective", false, "Print the merged configuration of the workspace")
}
