package scaffold

import (
	"path"

	"github.com/kotlin-frc/kfrc/internal/templates"
)

// Layout of generated projects.
const (
	SourceRoot  = "src/main/kotlin/frc/robot"
	RootPackage = "frc.robot"
	BuildFile   = "build.gradle"
)

// StepKind tags a recipe step.
type StepKind int

const (
	// EnsureDir creates a directory and its ancestors.
	EnsureDir StepKind = iota
	// WriteFile renders a template and writes it to a file.
	WriteFile
)

// Step is one recipe action. Path is slash-separated and relative to the
// project root. Template, ClassName and Package only apply to WriteFile.
type Step struct {
	Kind      StepKind
	Path      string
	Template  templates.ID
	ClassName string
	Package   string
}

// Recipe is the fixed, ordered list of steps for one flavor.
type Recipe struct {
	Flavor Flavor
	Steps  []Step
}

// Dirs returns the EnsureDir steps in order.
func (r Recipe) Dirs() []Step {
	return r.filter(EnsureDir)
}

// Files returns the WriteFile steps in order.
func (r Recipe) Files() []Step {
	return r.filter(WriteFile)
}

// Templates returns the template IDs the recipe needs, in fetch order.
func (r Recipe) Templates() []templates.ID {
	files := r.Files()
	ids := make([]templates.ID, len(files))
	for i, s := range files {
		ids[i] = s.Template
	}
	return ids
}

func (r Recipe) filter(kind StepKind) []Step {
	var out []Step
	for _, s := range r.Steps {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

func dir(sub string) Step {
	return Step{Kind: EnsureDir, Path: path.Join(SourceRoot, sub)}
}

// buildGradle has no class or package; only the platform version applies.
func buildGradle(id templates.ID) Step {
	return Step{Kind: WriteFile, Path: BuildFile, Template: id}
}

// source writes <class>.kt into SourceRoot/sub with the package derived from sub.
func source(id templates.ID, sub, class string) Step {
	pkg := RootPackage
	if sub != "" {
		pkg += "." + sub
	}
	return Step{
		Kind:      WriteFile,
		Path:      path.Join(SourceRoot, sub, class+".kt"),
		Template:  id,
		ClassName: class,
		Package:   pkg,
	}
}

var Recipes = [...]Recipe{
	CommandBased: {CommandBased, []Step{
		dir("commands"),
		dir("subsystems"),
		buildGradle(templates.BuildGradle),
		source(templates.Main, "", "Main"),
		source(templates.CommandRobot, "", "Robot"),
		source(templates.CommandConstants, "", "Constants"),
		source(templates.RobotContainer, "", "RobotContainer"),
		source(templates.Subsystem, "subsystems", "ExampleSubsystem"),
		source(templates.CommandExampleCommand, "commands", "ExampleCommand"),
	}},
	RomiCommandBased: {RomiCommandBased, []Step{
		dir("commands"),
		dir("subsystems"),
		buildGradle(templates.RomiBuildGradle),
		source(templates.Main, "", "Main"),
		// Romi command-based shares the command-based Robot class.
		source(templates.CommandRobot, "", "Robot"),
		source(templates.RomiCommandConstants, "", "Constants"),
		source(templates.RomiCommandRobotContainer, "", "RobotContainer"),
		source(templates.RomiCommandDrivetrainSubsystem, "subsystems", "RomiDrivetrain"),
		source(templates.RomiCommandExampleCommand, "commands", "ExampleCommand"),
	}},
	RomiTimed: {RomiTimed, []Step{
		dir(""),
		buildGradle(templates.RomiBuildGradle),
		source(templates.Main, "", "Main"),
		source(templates.RomiTimedRobot, "", "Robot"),
		source(templates.RomiTimedDrivetrain, "", "RomiDrivetrain"),
	}},
	Timed: {Timed, []Step{
		dir(""),
		buildGradle(templates.BuildGradle),
		source(templates.Main, "", "Main"),
		source(templates.TimedRobot, "", "Robot"),
	}},
	TimedSkeleton: {TimedSkeleton, []Step{
		dir(""),
		buildGradle(templates.BuildGradle),
		source(templates.Main, "", "Main"),
		source(templates.TimedSkeleton, "", "Robot"),
	}},
	RobotBaseSkeleton: {RobotBaseSkeleton, []Step{
		dir(""),
		buildGradle(templates.BuildGradle),
		source(templates.Main, "", "Main"),
		source(templates.RobotBaseRobot, "", "Robot"),
	}},
}

// RecipeFor returns the recipe of a flavor.
func RecipeFor(f Flavor) (Recipe, bool) {
	if !f.Valid() {
		return Recipe{}, false
	}
	return Recipes[f], true
}
