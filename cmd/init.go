package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cadalog/cadalog/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .cadalog.yml config file",
	Long: `Init writes a config file with defaults for the current directory.
With --wizard it asks a few questions first.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("wizard", false, "configure interactively")
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(cfgFile); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
	}

	var cfg *config.Config
	wizard, _ := cmd.Flags().GetBool("wizard")
	if wizard {
		c, err := config.RunWizard()
		if err != nil {
			return err
		}
		cfg = c
	} else {
		cfg = config.DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(cfgFile); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", cfgFile)
	return nil
}
