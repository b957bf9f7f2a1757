package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/railinfo/internal/infra/configfinder"
	"github.com/aalvaropc/railinfo/internal/infra/configinit"
	"github.com/aalvaropc/railinfo/internal/usecase"
)

func initCmd(_ *state) *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter railinfo.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			abs, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			if err := usecase.NewInitConfig(configinit.NewInitializer()).Execute(abs, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s in %s\n", configfinder.ConfigFile, abs)
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s or railinfo.api.key before running lookups.\n", configfinder.EnvAPIKey)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing railinfo.yaml")
	return c
}
