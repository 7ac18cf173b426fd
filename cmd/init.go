package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mrbrightsides/mermaind/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize mermaind configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the embedded page and writes the config file (default .mermaind.yml).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
