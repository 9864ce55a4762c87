package cli

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kotlin-frc/kfrc/internal/templates"
)

var (
	templatesDir   string
	templatesForce bool
)

func init() {
	templatesCmd.PersistentFlags().StringVarP(&templatesDir, "dir", "d", ".", "Project directory")
	templatesExportCmd.Flags().BoolVar(&templatesForce, "force", false, "Replace an existing override manifest")

	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)
	templatesCmd.AddCommand(templatesExportCmd)
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect and override project templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates and where each resolves from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(templatesDir)
		if err != nil {
			return fmt.Errorf("resolving project directory: %w", err)
		}
		overlay := templates.NewOverlay(afero.NewOsFs(), templates.Builtin)

		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"TEMPLATE", "SOURCE"})
		for _, id := range templates.All() {
			source := "builtin"
			if p, ok := overlay.Source(id, root); ok {
				source = p
			}
			t.AppendRow(table.Row{id, source})
		}
		t.Render()
		return nil
	},
}

var templatesShowCmd = &cobra.Command{
	Use:       "show <template>",
	Short:     "Print the raw text of a template",
	Args:      cobra.ExactArgs(1),
	ValidArgs: templateNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := templates.ParseID(args[0])
		if err != nil {
			return err
		}
		root, err := filepath.Abs(templatesDir)
		if err != nil {
			return fmt.Errorf("resolving project directory: %w", err)
		}
		text, ok := templates.NewOverlay(afero.NewOsFs(), templates.Builtin).Template(id, root)
		if !ok {
			return fmt.Errorf("template %s is not available", id)
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

var templatesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Copy the builtin templates into the project for editing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(templatesDir)
		if err != nil {
			return fmt.Errorf("resolving project directory: %w", err)
		}
		result, err := templates.Export(afero.NewOsFs(), root, templatesForce)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d templates to %s\n", len(result.Files), result.Dir)
		fmt.Fprintf(cmd.OutOrStdout(), "Edit %s to choose which ones the project uses.\n",
			filepath.Join(result.Dir, result.Manifest))
		return nil
	},
}

func templateNames() []string {
	var names []string
	for _, id := range templates.All() {
		names = append(names, id.String())
	}
	return names
}
