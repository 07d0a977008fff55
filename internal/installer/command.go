package installer

import (
	"strings"
)

// Command describes one external invocation.
type Command struct {
	// Name is the executable (e.g., "yarn").
	Name string

	// Args are the arguments after Name.
	Args []string

	// Dir is the working directory.
	Dir string
}

// Argv returns Name followed by Args.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String renders the command as a shell line that can be copied and re-run.
func (c Command) String() string {
	argv := c.Argv()
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, needsQuote) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("@/._-+=:,%", r):
		return false
	}
	return true
}
