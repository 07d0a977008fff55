// Package pkgname validates npm package names.
//
// The rules mirror the npm registry: errors make a name invalid for any
// package, warnings only for new packages. A scaffolded project must be
// valid for new packages.
package pkgname

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxLength is the longest name the registry accepts for new packages.
const MaxLength = 214

var scopedPackagePattern = regexp.MustCompile(`^(?:@([^/]+?)[/])?([^/]+?)$`)

// specialChars may not appear in the final segment of a new package name.
const specialChars = `~'!()*`

// Result holds the outcome of validating a package name.
type Result struct {
	// Name is the validated input.
	Name string

	// Errors make the name invalid for any package.
	Errors []string

	// Warnings make the name invalid for new packages only.
	Warnings []string
}

// ValidForNewPackages reports whether a new package may use the name.
func (r Result) ValidForNewPackages() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// ValidForOldPackages reports whether an existing package may keep the name.
func (r Result) ValidForOldPackages() bool {
	return len(r.Errors) == 0
}

// Problems returns errors followed by warnings.
func (r Result) Problems() []string {
	out := make([]string, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	return append(out, r.Warnings...)
}

// Validate checks name against the npm package naming rules.
func Validate(name string) Result {
	r := Result{Name: name}

	if name == "" {
		r.Errors = append(r.Errors, "name length must be greater than zero")
		return r
	}

	if strings.HasPrefix(name, ".") {
		r.Errors = append(r.Errors, "name cannot start with a period")
	}
	if strings.HasPrefix(name, "_") {
		r.Errors = append(r.Errors, "name cannot start with an underscore")
	}
	if strings.TrimSpace(name) != name {
		r.Errors = append(r.Errors, "name cannot contain leading or trailing spaces")
	}

	lower := strings.ToLower(name)
	if reservedNames[lower] {
		r.Errors = append(r.Errors, fmt.Sprintf("%s is a blacklisted name", lower))
	}

	if builtinModules[lower] {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%s is a core module name", name))
	}
	if len(name) > MaxLength {
		r.Warnings = append(r.Warnings, fmt.Sprintf("name can no longer contain more than %d characters", MaxLength))
	}
	if lower != name {
		r.Warnings = append(r.Warnings, "name can no longer contain capital letters")
	}

	segments := strings.Split(name, "/")
	if strings.ContainsAny(segments[len(segments)-1], specialChars) {
		r.Warnings = append(r.Warnings, `name can no longer contain special characters ("~'!()*")`)
	}

	if !isURLSafe(name) {
		if m := scopedPackagePattern.FindStringSubmatch(name); m != nil && m[1] != "" {
			if isURLSafe(m[1]) && isURLSafe(m[2]) {
				return r
			}
		}
		r.Errors = append(r.Errors, "name can only contain URL-friendly characters")
	}

	return r
}

// isURLSafe reports whether s survives URI component encoding unchanged.
func isURLSafe(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("-_.!~*'()", c) >= 0:
		default:
			return false
		}
	}
	return true
}
