package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePackageManager(t *testing.T) {
	tests := []struct {
		in      string
		want    PackageManager
		wantErr bool
	}{
		{"yarn", Yarn, false},
		{"NPM", NPM, false},
		{" pnpm ", PNPM, false},
		{"bun", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePackageManager(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInstallCommands(t *testing.T) {
	deps := []string{"a", "b"}

	tests := []struct {
		pm       PackageManager
		wantDev  []string
		wantProd []string
	}{
		{Yarn, []string{"yarn", "add", "--dev", "a", "b"}, []string{"yarn", "add", "a", "b"}},
		{NPM, []string{"npm", "install", "--save-dev", "a", "b"}, []string{"npm", "install", "--save", "a", "b"}},
		{PNPM, []string{"pnpm", "add", "--save-dev", "a", "b"}, []string{"pnpm", "add", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.pm.String(), func(t *testing.T) {
			assert.Equal(t, tt.wantDev, tt.pm.DevInstall("/d", deps).Argv())
			assert.Equal(t, tt.wantProd, tt.pm.ProdInstall("/d", deps).Argv())
		})
	}
}

func TestRunCommand(t *testing.T) {
	assert.Equal(t, "yarn run", Yarn.RunCommand())
	assert.Equal(t, "npm run", NPM.RunCommand())
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"plain", Command{Name: "yarn", Args: []string{"add", "--dev", "@babel/core"}}, "yarn add --dev @babel/core"},
		{"space", Command{Name: "npm", Args: []string{"install", "a b"}}, "npm install 'a b'"},
		{"quote", Command{Name: "x", Args: []string{"it's"}}, `x 'it'\''s'`},
		{"empty arg", Command{Name: "x", Args: []string{""}}, "x ''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}
