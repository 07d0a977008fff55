package manifest

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/Masterminds/semver/v3"

	oerrors "github.com/breadjs/create-bread-app/internal/errors"
)

//go:embed schema.cue
var schemaCUE []byte

// Validator checks manifests against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling manifest schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#PackageJSON"))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("looking up #PackageJSON: %w", err)
	}

	return &Validator{ctx: ctx, schema: def}, nil
}

// Validate reports every schema violation in m.
func (v *Validator) Validate(m *Manifest) error {
	if _, err := semver.StrictNewVersion(m.Version); err != nil {
		return fmt.Errorf("manifest version %q is not a semantic version: %w", m.Version, err)
	}

	data, err := m.Marshal()
	if err != nil {
		return err
	}

	// JSON is valid CUE.
	value := v.ctx.CompileBytes(data, cue.Filename(FileName))
	if err := value.Err(); err != nil {
		return fmt.Errorf("loading %s: %w", FileName, err)
	}

	if err := v.schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return oerrors.Wrap(oerrors.ErrValidation,
			fmt.Sprintf("%s does not match schema:\n%s", FileName, cueerrors.Details(err, nil)))
	}

	return nil
}
