// Package installer runs a package manager to install a project's
// dependencies.
//
// Each dependency group (dev, prod) becomes one external command. Commands
// inherit the terminal so the user sees live output, and every failure is
// reported with the exact command line so it can be re-run by hand.
package installer
