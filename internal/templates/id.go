package templates

import "fmt"

// ID names a single logical template.
type ID int

const (
	BuildGradle ID = iota
	RomiBuildGradle
	Main
	CommandRobot
	CommandConstants
	RobotContainer
	Subsystem
	CommandExampleCommand
	RomiCommandConstants
	RomiCommandRobotContainer
	RomiCommandDrivetrainSubsystem
	RomiCommandExampleCommand
	RomiTimedRobot
	RomiTimedDrivetrain
	TimedRobot
	TimedSkeleton
	RobotBaseRobot
)

type idInfo struct {
	name string
	file string
}

// ids is indexed by ID.
var ids = [...]idInfo{
	BuildGradle:                    {"build-gradle", "build.gradle.template"},
	RomiBuildGradle:                {"romi-build-gradle", "romi-build.gradle.template"},
	Main:                           {"main", "Main.kt.template"},
	CommandRobot:                   {"command-robot", "CommandRobot.kt.template"},
	CommandConstants:               {"command-constants", "CommandConstants.kt.template"},
	RobotContainer:                 {"robot-container", "RobotContainer.kt.template"},
	Subsystem:                      {"subsystem", "ExampleSubsystem.kt.template"},
	CommandExampleCommand:          {"command-example-command", "ExampleCommand.kt.template"},
	RomiCommandConstants:           {"romi-command-constants", "RomiCommandConstants.kt.template"},
	RomiCommandRobotContainer:      {"romi-command-robot-container", "RomiCommandRobotContainer.kt.template"},
	RomiCommandDrivetrainSubsystem: {"romi-command-drivetrain-subsystem", "RomiCommandDrivetrain.kt.template"},
	RomiCommandExampleCommand:      {"romi-command-example-command", "RomiCommandExampleCommand.kt.template"},
	RomiTimedRobot:                 {"romi-timed-robot", "RomiTimedRobot.kt.template"},
	RomiTimedDrivetrain:            {"romi-timed-drivetrain", "RomiTimedDrivetrain.kt.template"},
	TimedRobot:                     {"timed-robot", "TimedRobot.kt.template"},
	TimedSkeleton:                  {"timed-skeleton", "TimedSkeleton.kt.template"},
	RobotBaseRobot:                 {"robot-base-robot", "RobotBaseRobot.kt.template"},
}

// All returns every template ID in declaration order.
func All() []ID {
	all := make([]ID, len(ids))
	for i := range ids {
		all[i] = ID(i)
	}
	return all
}

// Valid reports whether id belongs to the closed set.
func (id ID) Valid() bool {
	return id >= 0 && int(id) < len(ids)
}

// String returns the identifier used in override manifests, e.g. "robot-container".
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return ids[id].name
}

// File returns the name of the builtin template file for id.
func (id ID) File() string {
	if !id.Valid() {
		return ""
	}
	return ids[id].file
}

// ParseID resolves an identifier name.
func ParseID(name string) (ID, error) {
	for i, info := range ids {
		if info.name == name {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown template %q", name)
}
