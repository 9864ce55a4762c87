package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	values := Values{ClassName: "Robot", Package: "frc.robot", PlatformVersion: "2024.1.1"}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "all tokens",
			in:   "package #{PACKAGE}\nclass #{NAME} // #{GRADLE_RIO_VERSION}",
			want: "package frc.robot\nclass Robot // 2024.1.1",
		},
		{
			name: "repeated tokens",
			in:   "#{NAME}#{NAME} #{PACKAGE}.#{NAME}",
			want: "RobotRobot frc.robot.Robot",
		},
		{
			name: "no tokens",
			in:   "plain text with ${kotlin} templates",
			want: "plain text with ${kotlin} templates",
		},
		{
			name: "partial tokens are literal",
			in:   "#{NAM} #NAME {NAME} #{name}",
			want: "#{NAM} #NAME {NAME} #{name}",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.in, values))
		})
	}
}

func TestSubstituteEmptyValues(t *testing.T) {
	got := Substitute(`version "#{GRADLE_RIO_VERSION}" #{NAME}#{PACKAGE}`, Values{PlatformVersion: "2024.3.2"})
	assert.Equal(t, `version "2024.3.2" `, got)
}

func TestSubstituteIdempotent(t *testing.T) {
	values := Values{ClassName: "Main", Package: "frc.robot", PlatformVersion: "2024.1.1"}
	in := "package #{PACKAGE}\nobject #{NAME}\n"

	once := Substitute(in, values)
	assert.Equal(t, once, Substitute(once, values))
}

func TestSubstituteValuesNotReexpanded(t *testing.T) {
	got := Substitute("#{NAME} #{PACKAGE}", Values{ClassName: "#{PACKAGE}", Package: "frc.robot"})
	assert.Equal(t, "#{PACKAGE} frc.robot", got)
}

func TestSubstituteBuiltinLeavesNoTokens(t *testing.T) {
	values := Values{ClassName: "Example", Package: "frc.robot.example", PlatformVersion: "2024.3.2"}
	for _, id := range All() {
		text, ok := Builtin.Template(id, "")
		if !assert.True(t, ok, id.String()) {
			continue
		}
		out := Substitute(text, values)
		for _, tok := range []string{TokenClassName, TokenPackage, TokenPlatformVersion} {
			assert.False(t, strings.Contains(out, tok), "%s still contains %s", id, tok)
		}
	}
}
