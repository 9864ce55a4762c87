package scaffold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Flavor is one of the supported project archetypes.
type Flavor int

const (
	CommandBased Flavor = iota
	RomiCommandBased
	RomiTimed
	Timed
	TimedSkeleton
	RobotBaseSkeleton
)

type flavorInfo struct {
	name        string
	description string
}

var flavors = [...]flavorInfo{
	CommandBased:      {"command", "Command-based robot with an example subsystem and command"},
	RomiCommandBased:  {"romi-command", "Command-based Romi robot with a drivetrain subsystem"},
	RomiTimed:         {"romi-timed", "Timed Romi robot with a drivetrain class"},
	Timed:             {"timed", "Timed robot with an autonomous chooser"},
	TimedSkeleton:     {"timed-skeleton", "Timed robot with empty mode methods"},
	RobotBaseSkeleton: {"robot-base-skeleton", "RobotBase robot that runs its own mode loop"},
}

// Flavors returns every flavor in display order.
func Flavors() []Flavor {
	all := make([]Flavor, len(flavors))
	for i := range flavors {
		all[i] = Flavor(i)
	}
	return all
}

// Valid reports whether f is a known flavor.
func (f Flavor) Valid() bool {
	return f >= 0 && int(f) < len(flavors)
}

// String returns the flavor's command-line name, e.g. "romi-command".
func (f Flavor) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
	return flavors[f].name
}

// Description returns a one-line summary of the flavor.
func (f Flavor) Description() string {
	if !f.Valid() {
		return ""
	}
	return flavors[f].description
}

// Names returns the command-line names of every flavor.
func Names() []string {
	names := make([]string, len(flavors))
	for i, info := range flavors {
		names[i] = info.name
	}
	return names
}

// Lookup resolves a flavor by name, ignoring case. An unknown name yields an
// error that suggests the closest matches.
func Lookup(name string) (Flavor, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range flavors {
		if info.name == name {
			return Flavor(i), nil
		}
	}

	msg := fmt.Sprintf("unknown project flavor %q", name)
	if suggestions := suggest(name); len(suggestions) > 0 {
		msg += fmt.Sprintf("; did you mean %s?", strings.Join(suggestions, " or "))
	} else {
		msg += fmt.Sprintf(" (available: %s)", strings.Join(Names(), ", "))
	}
	return 0, errors.New(msg)
}

const maxSuggestions = 2

func suggest(name string) []string {
	if name == "" {
		return nil
	}
	matches := fuzzy.Find(name, Names())
	var out []string
	for _, m := range matches {
		out = append(out, fmt.Sprintf("%q", m.Str))
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
