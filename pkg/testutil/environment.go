package testutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// Environment holds the isolated XDG directories of a test.
type Environment struct {
	Root      string
	ConfigDir string
	StateDir  string
}

// NewEnvironment points XDG_CONFIG_HOME, XDG_CONFIG_DIRS and XDG_STATE_HOME
// at fresh directories and reloads xdg. Everything is restored on cleanup.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root := t.TempDir()
	env := &Environment{
		Root:      root,
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigDir)
	t.Setenv("XDG_CONFIG_DIRS", env.ConfigDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}

// ConfigFile creates a file relative to the isolated config home.
func (env *Environment) ConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	return CreateFile(t, env.ConfigDir, name, content)
}
