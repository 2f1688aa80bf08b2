package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fpv-neon/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning YAML",
	Long: `Print the built-in tuning. Save it, edit it and pass it back with
--config, or drop it at ~/.fpvneon/configs/drone.yaml to make it the default.

Examples:
  fpvneon config > drone.yaml
  fpvneon play --config drone.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
