package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input (project name, flags, manifest).
	ErrValidation = errors.New("validation error")

	// ErrFilesystem indicates the project directory or its files could not be written.
	ErrFilesystem = errors.New("filesystem error")

	// ErrInstall indicates a package manager invocation failed.
	ErrInstall = errors.New("install failed")

	// ErrNotFound indicates a required binary or file was not found.
	ErrNotFound = errors.New("not found")
)
