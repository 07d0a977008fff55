package project

import (
	"fmt"

	oerrors "github.com/breadjs/create-bread-app/internal/errors"
	"github.com/breadjs/create-bread-app/internal/pkgname"
)

// NameError reports a project name rejected by the npm naming rules.
type NameError struct {
	Name   string
	Result pkgname.Result
}

// Error implements the error interface.
func (e *NameError) Error() string {
	return fmt.Sprintf("could not create a project called %q because of npm naming restrictions", e.Name)
}

// Is makes every NameError match oerrors.ErrValidation.
func (e *NameError) Is(target error) bool {
	return target == oerrors.ErrValidation
}
