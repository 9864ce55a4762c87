package cli

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kotlin-frc/kfrc/internal/scaffold"
)

func init() {
	rootCmd.AddCommand(flavorsCmd)
}

var flavorsCmd = &cobra.Command{
	Use:   "flavors",
	Short: "List project flavors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"FLAVOR", "DESCRIPTION", "FILES"})
		for _, f := range scaffold.Flavors() {
			recipe, _ := scaffold.RecipeFor(f)
			var files []string
			for _, s := range recipe.Files() {
				files = append(files, strings.TrimPrefix(s.Path, scaffold.SourceRoot+"/"))
			}
			t.AppendRow(table.Row{f, f.Description(), strings.Join(files, "\n")})
			t.AppendSeparator()
		}
		t.Render()
		return nil
	},
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}
