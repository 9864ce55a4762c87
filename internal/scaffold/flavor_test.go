package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlavorNames(t *testing.T) {
	assert.Equal(t, []string{
		"command",
		"romi-command",
		"romi-timed",
		"timed",
		"timed-skeleton",
		"robot-base-skeleton",
	}, Names())
	assert.Len(t, Flavors(), 6)

	for _, f := range Flavors() {
		assert.NotEmpty(t, f.Description(), f.String())
	}
	assert.Equal(t, "Flavor(42)", Flavor(42).String())
	assert.False(t, Flavor(-1).Valid())
}

func TestLookup(t *testing.T) {
	tests := []struct {
		input string
		want  Flavor
	}{
		{"command", CommandBased},
		{"Romi-Command", RomiCommandBased},
		{" romi-timed ", RomiTimed},
		{"timed", Timed},
		{"timed-skeleton", TimedSkeleton},
		{"robot-base-skeleton", RobotBaseSkeleton},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Lookup(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupSuggestions(t *testing.T) {
	_, err := Lookup("romi-comand")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown project flavor "romi-comand"`)
	assert.Contains(t, err.Error(), `did you mean "romi-command"`)

	_, err = Lookup("xyz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: command, romi-command")
}

func TestRecipesCoverEveryFlavor(t *testing.T) {
	for _, f := range Flavors() {
		r, ok := RecipeFor(f)
		require.True(t, ok, f.String())
		assert.Equal(t, f, r.Flavor)
		assert.NotEmpty(t, r.Dirs(), f.String())

		files := r.Files()
		require.NotEmpty(t, files)
		assert.Equal(t, BuildFile, files[0].Path, "%s writes the build file first", f)
		assert.Empty(t, files[0].ClassName)
		assert.Empty(t, files[0].Package)
		for _, s := range files[1:] {
			assert.NotEmpty(t, s.ClassName, s.Path)
			assert.NotEmpty(t, s.Package, s.Path)
			assert.True(t, s.Template.Valid(), s.Path)
		}
	}

	_, ok := RecipeFor(Flavor(99))
	assert.False(t, ok)
}
