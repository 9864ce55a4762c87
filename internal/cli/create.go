package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/kotlin-frc/kfrc/internal/branding"
	"github.com/kotlin-frc/kfrc/internal/config"
	"github.com/kotlin-frc/kfrc/internal/gradlerio"
	"github.com/kotlin-frc/kfrc/internal/scaffold"
	"github.com/kotlin-frc/kfrc/internal/templates"
)

// Shared flags for all create subcommands.
var (
	createDir         string
	createGradleRIO   string
	createInterleaved bool
)

func init() {
	createCmd.PersistentFlags().StringVarP(&createDir, "dir", "d", ".", "Project directory")
	createCmd.PersistentFlags().StringVar(&createGradleRIO, "gradlerio-version", "",
		fmt.Sprintf("GradleRIO version for build.gradle (default: config %s or %s)", config.KeyGradleRIOVersion, gradlerio.DefaultVersion))
	createCmd.PersistentFlags().BoolVar(&createInterleaved, "interleaved", false,
		"Write each file as soon as its template is resolved")
	rootCmd.AddCommand(createCmd)

	for _, f := range scaffold.Flavors() {
		createCmd.AddCommand(newCreateFlavorCmd(f))
	}
}

var createCmd = &cobra.Command{
	Use:   "create <flavor>",
	Short: "Generate a robot project",
	Long: `Generate a Kotlin robot project of the given flavor.

Existing files are overwritten. If a template cannot be resolved the run is
cancelled; directories created so far are kept.

Examples:
  ` + branding.CLIName() + ` create command --dir ./robot
  ` + branding.CLIName() + ` create timed --gradlerio-version 2024.1.1`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: scaffold.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		flavor, err := scaffold.Lookup(args[0])
		if err != nil {
			return err
		}
		return runCreate(cmd, flavor)
	},
}

func newCreateFlavorCmd(f scaffold.Flavor) *cobra.Command {
	return &cobra.Command{
		Use:   f.String(),
		Short: f.Description(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, f)
		},
	}
}

func runCreate(cmd *cobra.Command, flavor scaffold.Flavor) error {
	version, err := gradlerio.Resolve(createGradleRIO, config.Get(config.KeyGradleRIOVersion))
	if err != nil {
		return err
	}
	if gradlerio.OlderThanDefault(version) {
		log.Warnf("GradleRIO %s is older than %s; the generated code may not build", version, gradlerio.DefaultVersion)
	}

	root, err := filepath.Abs(createDir)
	if err != nil {
		return fmt.Errorf("resolving project directory: %w", err)
	}

	result, err := scaffold.Generate(cmd.Context(), flavor, scaffold.Options{
		Root:            root,
		Provider:        templates.NewOverlay(nil, templates.Builtin),
		PlatformVersion: version,
		Interleaved:     createInterleaved,
	})
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result, version)
	return nil
}

func printResult(w io.Writer, result *scaffold.Result, version string) {
	fmt.Fprintf(w, "Created %s project in %s (GradleRIO %s)\n", result.Flavor, result.Root, version)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
}
