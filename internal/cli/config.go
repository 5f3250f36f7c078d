package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/fretsvg/internal/config"
	"github.com/example/fretsvg/internal/wire"
)

// LoadConfig resolves the configuration and installs it for wiring.
// An explicit path must exist; otherwise .fretsvg/config.yaml in the working
// directory is used when present.
func LoadConfig(path string) error {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cwd, werr := os.Getwd()
		if werr != nil {
			return fmt.Errorf("failed to get working directory: %w", werr)
		}
		cfg, err = config.LoadConfig(cwd)
	}
	if err != nil {
		return err
	}

	wire.SetConfig(cfg)
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the fretsvg configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(wire.Config())
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .fretsvg/config.yaml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		force, _ := cmd.Flags().GetBool("force")
		path := config.Path(cwd)
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := config.SaveConfig(cwd, config.Default()); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	return configCmd
}
