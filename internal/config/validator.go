package config

import (
	"fmt"
	"strings"
)

// PackageManagers lists the accepted packageManager values.
var PackageManagers = []string{"yarn", "npm", "pnpm"}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		fmt.Fprintf(&sb, "  %s: %s\n", err.Field, err.Message)
	}
	return sb.String()
}

// Validate checks values that cannot be expressed by the field types.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if pm := cfg.PackageManager; pm != "" && !isPackageManager(pm) {
		errs = append(errs, ValidationError{
			Field:   KeyPackageManager,
			Message: fmt.Sprintf("%q is not one of %s", pm, strings.Join(PackageManagers, ", ")),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isPackageManager(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, pm := range PackageManagers {
		if s == pm {
			return true
		}
	}
	return false
}
