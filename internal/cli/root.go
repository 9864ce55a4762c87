package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kotlin-frc/kfrc/internal/branding"
	"github.com/kotlin-frc/kfrc/internal/config"
	"github.com/kotlin-frc/kfrc/internal/scaffold"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

var errorColor = color.New(color.FgRed, color.Bold)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates Kotlin robot projects for the FRC control system.

Each project flavor writes a build file, an entry point and the robot classes
from a fixed set of templates. Templates can be overridden per project with
'` + branding.CLIName() + ` templates export'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	log.SetHandler(clihandler.Default)
}

// Execute runs the root command with build info injected via ldflags. Errors
// are reported on stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(os.Stderr, err)
	}
	return err
}

// NullTemplateMessage is shown when generation stops on a missing template.
func NullTemplateMessage() string {
	return branding.DisplayName() + ": Received a null template. Cancelling..."
}

func reportError(w io.Writer, err error) {
	if errors.Is(err, scaffold.ErrNullTemplate) {
		log.WithError(err).Debug("generation cancelled")
		errorColor.Fprintln(w, NullTemplateMessage())
		return
	}
	errorColor.Fprintf(w, "Error: %s\n", err)
}
