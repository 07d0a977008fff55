package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/breadjs/create-bread-app/internal/output"
	"github.com/breadjs/create-bread-app/internal/project"
	"github.com/breadjs/create-bread-app/internal/templates"
)

// printNameError lists every naming problem, errors before warnings.
func printNameError(w io.Writer, err *project.NameError) {
	fmt.Fprintf(w, "Could not create a project called %s because of npm naming restrictions:\n",
		output.StyleError.Render(fmt.Sprintf("%q", err.Name)))
	for _, reason := range err.Result.Errors {
		fmt.Fprintln(w, output.FormatBullet(output.StyleError, reason))
	}
	for _, reason := range err.Result.Warnings {
		fmt.Fprintln(w, output.FormatBullet(output.StyleWarning, reason))
	}
}

// printSuccess prints the generated tree and the next steps.
func printSuccess(r *project.Result) {
	d := r.Descriptor

	files := make(map[string]string, len(r.Files))
	for _, f := range r.Files {
		files[f] = templates.Describe(f)
	}

	output.Println("")
	output.Println(output.RenderFileTree(d.Name, files))
	output.Println(output.FormatCheckmark(fmt.Sprintf("Created %s at %s",
		output.StyleNoun.Render(d.Name), output.StyleNoun.Render(d.Dir))))

	run := d.PackageManager.RunCommand()
	var sb strings.Builder
	sb.WriteString("\nInside that directory, you can run several commands:\n\n")
	for _, script := range []string{"build", "test", "lint", "clean"} {
		if _, ok := r.Manifest.Scripts[script]; !ok {
			continue
		}
		fmt.Fprintf(&sb, "  %s\n", output.StyleNoun.Render(run+" "+script))
	}

	sb.WriteString("\nWe suggest that you begin by typing:\n\n")
	fmt.Fprintf(&sb, "  %s\n", output.StyleNoun.Render("cd "+relativeDir(d.Dir)))
	if d.SkipInstall {
		fmt.Fprintf(&sb, "  %s\n", output.StyleNoun.Render(d.PackageManager.Binary()+" install"))
	}
	next := "test"
	if _, ok := r.Manifest.Scripts["build"]; ok {
		next = "build"
	}
	fmt.Fprintf(&sb, "  %s\n", output.StyleNoun.Render(run+" "+next))

	output.Print(sb.String())
}

// relativeDir returns dir relative to the working directory when it is
// below it, otherwise dir itself.
func relativeDir(dir string) string {
	wd, err := filepath.Abs(".")
	if err != nil {
		return dir
	}
	rel, err := filepath.Rel(wd, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return dir
	}
	return rel
}
