package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/breadjs/create-bread-app/internal/errors"
	"github.com/breadjs/create-bread-app/internal/installer"
	"github.com/breadjs/create-bread-app/internal/manifest"
	"github.com/breadjs/create-bread-app/internal/testutil"
)

func newDescriptor(t *testing.T, name string, toggles manifest.Toggles) Descriptor {
	t.Helper()
	d, err := NewDescriptor(filepath.Join(t.TempDir(), name), toggles)
	require.NoError(t, err)
	return d
}

func newCreator(t *testing.T, runner installer.Runner) *Creator {
	t.Helper()
	c, err := NewCreator(WithRunner(runner))
	require.NoError(t, err)
	return c
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sorted(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func TestNewDescriptor(t *testing.T) {
	dir := t.TempDir()
	d, err := NewDescriptor(filepath.Join(dir, "nested", "my-app"), manifest.DefaultToggles())
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(d.Dir))
	assert.Equal(t, "my-app", d.Name)
	assert.Equal(t, installer.Yarn, d.PackageManager)
	assert.True(t, d.Toggles.Rollup)
	assert.True(t, d.Toggles.TypeScript)
	assert.False(t, d.Toggles.Webpack)

	_, err = NewDescriptor("", manifest.DefaultToggles())
	assert.Error(t, err)
}

func TestNewDescriptor_RelativeTarget(t *testing.T) {
	dir := t.TempDir()
	testutil.Chdir(t, dir)

	d, err := NewDescriptor("my-app", manifest.DefaultToggles())
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "my-app"), d.Dir)
}

func TestCreate_DefaultsEndToEnd(t *testing.T) {
	runner := testutil.NewFakeRunner()
	d := newDescriptor(t, "my-app", manifest.DefaultToggles())

	res, err := newCreator(t, runner).Create(context.Background(), d)
	require.NoError(t, err)

	pkg, err := manifest.Read(filepath.Join(d.Dir, manifest.FileName))
	require.NoError(t, err)

	assert.Equal(t, "my-app", pkg.Name)
	assert.Equal(t, "0.1.0", pkg.Version)
	assert.True(t, pkg.Private)
	assert.Equal(t, []string{"cross-env", "rimraf"}, sortedKeys(pkg.Dependencies))

	wantDev := sorted([]string{
		"@types/node", "@types/jest", "@babel/core", "@babel/preset-env",
		"@babel/plugin-proposal-export-default-from",
		"@babel/plugin-proposal-class-properties",
		"@babel/plugin-proposal-pipeline-operator",
		"@babel/plugin-proposal-optional-chaining",
		"@babel/plugin-proposal-function-bind",
		"@babel/plugin-syntax-dynamic-import",
		"typescript", "tslint",
		"rollup", "rollup-plugin-node-resolve", "rollup-plugin-commonjs",
		"rollup-plugin-json", "rollup-plugin-terser", "rollup-plugin-typescript",
	})
	assert.Equal(t, wantDev, sortedKeys(pkg.DevDependencies))
	assert.ElementsMatch(t,
		[]string{"babel.config.js", "jest.config.js", "tslint.json", "tsconfig.json", "build/rollup"},
		pkg.Bread.Files)

	calls := runner.Calls()
	require.Len(t, calls, 2, "package manager must be invoked exactly twice")
	assert.Equal(t, []string{"add", "--dev"}, calls[0].Args[:2])
	assert.ElementsMatch(t, wantDev, calls[0].Args[2:])
	assert.Equal(t, []string{"add", "cross-env", "rimraf"}, calls[1].Args)
	for _, c := range calls {
		assert.Equal(t, "yarn", c.Name)
		assert.Equal(t, d.Dir, c.Dir)
	}

	assert.Contains(t, res.Files, "package.json")
	assert.Contains(t, res.Files, "src/index.ts")
	assert.Contains(t, res.Files, "build/rollup/rollup.config.js")
	assert.NotContains(t, res.Files, "build/webpack/webpack.config.js")
	require.NotNil(t, res.Preflight)
	assert.Len(t, res.Installs, 2)
}

func TestCreate_InvalidNameCreatesNothing(t *testing.T) {
	names := []string{"My-App", "_private", ".hidden", "node_modules", "has space"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			runner := testutil.NewFakeRunner()
			d := newDescriptor(t, name, manifest.DefaultToggles())

			res, err := newCreator(t, runner).Create(context.Background(), d)
			require.Error(t, err)
			assert.Nil(t, res)

			var nameErr *NameError
			require.True(t, errors.As(err, &nameErr))
			assert.Equal(t, name, nameErr.Name)
			assert.NotEmpty(t, nameErr.Result.Problems())
			assert.True(t, errors.Is(err, oerrors.ErrValidation))

			assert.False(t, testutil.Exists(t, d.Dir), "no directory for an invalid name")
			assert.Empty(t, runner.Calls())
		})
	}
}

func TestCreate_InstallFailureNamesCommand(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Fail = func(c installer.Command) error {
		if c.Args[1] == "--dev" {
			return testutil.ExitStatus(2)
		}
		return nil
	}
	d := newDescriptor(t, "my-app", manifest.DefaultToggles())

	res, err := newCreator(t, runner).Create(context.Background(), d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrInstall))
	assert.Contains(t, err.Error(), "`yarn add --dev")
	assert.Contains(t, err.Error(), "exited with status 2")

	require.NotNil(t, res)
	assert.Len(t, res.Installs, 2)
	assert.True(t, testutil.Exists(t, filepath.Join(d.Dir, manifest.FileName)),
		"generated files stay in place after a failed install")
}

func TestCreate_SkipInstall(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Missing = []string{"yarn", "node"}

	d := newDescriptor(t, "my-app", manifest.DefaultToggles())
	d.SkipInstall = true

	res, err := newCreator(t, runner).Create(context.Background(), d)
	require.NoError(t, err)

	assert.Nil(t, res.Preflight)
	assert.Empty(t, res.Installs)
	assert.Empty(t, runner.Calls())
	assert.True(t, testutil.Exists(t, filepath.Join(d.Dir, "README.md")))
}

func TestCreate_PreflightFailureCreatesNothing(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.NodeVersion = "v6.11.0"
	d := newDescriptor(t, "my-app", manifest.DefaultToggles())

	_, err := newCreator(t, runner).Create(context.Background(), d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.False(t, testutil.Exists(t, d.Dir))
}

func TestCreate_PackageManagers(t *testing.T) {
	tests := []struct {
		pm       installer.PackageManager
		wantDev  []string
		wantProd []string
	}{
		{installer.NPM, []string{"install", "--save-dev"}, []string{"install", "--save"}},
		{installer.PNPM, []string{"add", "--save-dev"}, []string{"add"}},
	}

	for _, tt := range tests {
		t.Run(tt.pm.String(), func(t *testing.T) {
			runner := testutil.NewFakeRunner()
			d := newDescriptor(t, "my-app", manifest.DefaultToggles())
			d.PackageManager = tt.pm

			_, err := newCreator(t, runner).Create(context.Background(), d)
			require.NoError(t, err)

			calls := runner.Calls()
			require.Len(t, calls, 2)
			assert.Equal(t, tt.pm.Binary(), calls[0].Name)
			assert.Equal(t, tt.wantDev, calls[0].Args[:len(tt.wantDev)])
			assert.Equal(t, tt.wantProd, calls[1].Args[:len(tt.wantProd)])
		})
	}
}

func TestCreate_BothBundlersJavaScript(t *testing.T) {
	runner := testutil.NewFakeRunner()
	d := newDescriptor(t, "my-app", manifest.Toggles{Webpack: true, Rollup: true})
	d.ParallelInstall = true

	res, err := newCreator(t, runner).Create(context.Background(), d)
	require.NoError(t, err)

	assert.Contains(t, res.Files, "src/index.js")
	assert.Contains(t, res.Files, "build/rollup/rollup.config.js")
	assert.Contains(t, res.Files, "build/webpack/webpack.config.js")
	assert.NotContains(t, res.Files, "tsconfig.json")

	assert.True(t, res.Manifest.Dev.Contains("webpack"))
	assert.True(t, res.Manifest.Dev.Contains("rollup"))
	assert.False(t, res.Manifest.Dev.Contains("ts-loader"))
	assert.False(t, res.Manifest.Dev.Contains("rollup-plugin-typescript"))
	assert.Len(t, runner.Calls(), 2)
}

func TestCreate_NonEmptyDirectory(t *testing.T) {
	d := newDescriptor(t, "my-app", manifest.DefaultToggles())
	d.SkipInstall = true
	testutil.WriteFile(t, d.Dir, "notes.txt", "keep me")

	_, err := newCreator(t, testutil.NewFakeRunner()).Create(context.Background(), d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))

	d.Force = true
	_, err = newCreator(t, testutil.NewFakeRunner()).Create(context.Background(), d)
	require.NoError(t, err)
	assert.True(t, testutil.Exists(t, filepath.Join(d.Dir, "notes.txt")))
}
