package scaffold

import (
	"errors"
	"fmt"

	"github.com/kotlin-frc/kfrc/internal/templates"
)

// ErrNullTemplate is returned when a recipe needs a template the store does
// not have. Generation stops at the first such template.
var ErrNullTemplate = errors.New("received a null template")

// MissingTemplateError names the template that could not be resolved.
type MissingTemplateError struct {
	Flavor   Flavor
	Template templates.ID
	Path     string
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("%s: %s needs template %q for %s", ErrNullTemplate, e.Flavor, e.Template, e.Path)
}

func (e *MissingTemplateError) Unwrap() error {
	return ErrNullTemplate
}
