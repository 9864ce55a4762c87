package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kotlin-frc/kfrc/internal/branding"
	"github.com/kotlin-frc/kfrc/internal/config"
	"github.com/kotlin-frc/kfrc/internal/gradlerio"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: fmt.Sprintf(`Read and write %s configuration stored at ~/%s/config.yaml.

Keys: %s. Each key can also be set through the environment, e.g. %s.`,
		branding.DisplayName(), branding.HomeDir(), strings.Join(config.Keys, ", "),
		branding.EnvVar(config.KeyGradleRIOVersion)),
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a configuration value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if key == config.KeyGradleRIOVersion {
			v, err := gradlerio.Resolve(value, "")
			if err != nil {
				return err
			}
			value = v
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a configuration value",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
