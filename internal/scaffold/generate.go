package scaffold

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	"github.com/spf13/afero"

	"github.com/kotlin-frc/kfrc/internal/gradlerio"
	"github.com/kotlin-frc/kfrc/internal/materializer"
	"github.com/kotlin-frc/kfrc/internal/templates"
)

// State tracks how far a run got.
type State int

const (
	NotStarted State = iota
	DirectoriesEnsured
	TemplatesFetched
	FilesWritten
	Aborted
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case DirectoriesEnsured:
		return "directories-ensured"
	case TemplatesFetched:
		return "templates-fetched"
	case FilesWritten:
		return "files-written"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options configures a Generate run.
type Options struct {
	// Root is the project directory. Required.
	Root string
	// Provider resolves templates. Defaults to templates.Builtin.
	Provider templates.Provider
	// Fs is the output filesystem. Defaults to the OS filesystem.
	Fs afero.Fs
	// PlatformVersion replaces #{GRADLE_RIO_VERSION}. Defaults to
	// gradlerio.DefaultVersion.
	PlatformVersion string
	// Interleaved fetches and writes each file in turn instead of fetching
	// every template up front. Files written before a missing template are
	// kept.
	Interleaved bool
}

// Result describes what a run produced. Paths are slash-separated and
// relative to Root.
type Result struct {
	Flavor Flavor
	Root   string
	Dirs   []string
	Files  []string
	State  State
}

type rendered struct {
	step Step
	text string
}

// Generate runs the recipe for flavor under opts.Root. Directories are created
// first. When a template is missing the run stops with a *MissingTemplateError
// and directories already created are left in place.
func Generate(ctx context.Context, flavor Flavor, opts Options) (*Result, error) {
	recipe, ok := RecipeFor(flavor)
	if !ok {
		return nil, fmt.Errorf("unknown project flavor %s", flavor)
	}
	if opts.Root == "" {
		return nil, errors.New("project root is required")
	}
	if opts.Provider == nil {
		opts.Provider = templates.Builtin
	}
	if opts.PlatformVersion == "" {
		opts.PlatformVersion = gradlerio.DefaultVersion
	}

	g := &generator{
		opts:   opts,
		recipe: recipe,
		mat:    materializer.New(opts.Fs),
		result: &Result{Flavor: flavor, Root: opts.Root, State: NotStarted},
		logger: log.WithFields(log.Fields{"flavor": flavor.String(), "root": opts.Root}),
	}

	var err error
	if opts.Interleaved {
		err = g.runInterleaved(ctx)
	} else {
		err = g.runBatch(ctx)
	}
	if err != nil {
		g.result.State = Aborted
		g.logger.WithError(err).Debug("generation aborted")
		return g.result, err
	}

	g.result.State = FilesWritten
	g.logger.WithField("files", len(g.result.Files)).Info("project generated")
	return g.result, nil
}

type generator struct {
	opts   Options
	recipe Recipe
	mat    *materializer.Materializer
	result *Result
	logger log.Interface
}

func (g *generator) runBatch(ctx context.Context) error {
	if err := g.ensureDirs(ctx); err != nil {
		return err
	}

	steps := g.recipe.Files()
	out := make([]rendered, 0, len(steps))
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		text, err := g.fetch(step)
		if err != nil {
			return err
		}
		out = append(out, rendered{step: step, text: text})
	}
	g.result.State = TemplatesFetched

	for _, r := range out {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.write(r); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) runInterleaved(ctx context.Context) error {
	if err := g.ensureDirs(ctx); err != nil {
		return err
	}

	for _, step := range g.recipe.Files() {
		if err := ctx.Err(); err != nil {
			return err
		}
		text, err := g.fetch(step)
		if err != nil {
			return err
		}
		if err := g.write(rendered{step: step, text: text}); err != nil {
			return err
		}
	}
	g.result.State = TemplatesFetched
	return nil
}

func (g *generator) ensureDirs(ctx context.Context) error {
	for _, step := range g.recipe.Dirs() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.mat.EnsureDir(g.abs(step.Path)); err != nil {
			return err
		}
		g.logger.Debugf("ensured %s", step.Path)
		g.result.Dirs = append(g.result.Dirs, step.Path)
	}
	g.result.State = DirectoriesEnsured
	return nil
}

// fetch resolves and substitutes the template of a file step.
func (g *generator) fetch(step Step) (string, error) {
	text, ok := g.opts.Provider.Template(step.Template, g.opts.Root)
	if !ok {
		return "", &MissingTemplateError{
			Flavor:   g.recipe.Flavor,
			Template: step.Template,
			Path:     step.Path,
		}
	}
	return templates.Substitute(text, templates.Values{
		ClassName:       step.ClassName,
		Package:         step.Package,
		PlatformVersion: g.opts.PlatformVersion,
	}), nil
}

func (g *generator) write(r rendered) error {
	if err := g.mat.WriteFile(g.abs(r.step.Path), r.text); err != nil {
		return err
	}
	g.logger.Debugf("wrote %s", r.step.Path)
	g.result.Files = append(g.result.Files, r.step.Path)
	return nil
}

func (g *generator) abs(rel string) string {
	return filepath.Join(g.opts.Root, filepath.FromSlash(rel))
}
