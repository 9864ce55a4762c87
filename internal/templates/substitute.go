package templates

import "strings"

// Placeholder tokens recognised in template text.
const (
	TokenClassName       = "#{NAME}"
	TokenPackage         = "#{PACKAGE}"
	TokenPlatformVersion = "#{GRADLE_RIO_VERSION}"
)

// Values are the substitutions applied to one output file.
type Values struct {
	ClassName       string
	Package         string
	PlatformVersion string
}

// Substitute replaces every placeholder token in text with the matching
// value. Tokens missing from text are ignored and nothing else is touched.
// Replacement is a single left-to-right pass, so a value that itself looks
// like a token is inserted verbatim.
func Substitute(text string, v Values) string {
	r := strings.NewReplacer(
		TokenClassName, v.ClassName,
		TokenPackage, v.Package,
		TokenPlatformVersion, v.PlatformVersion,
	)
	return r.Replace(text)
}
