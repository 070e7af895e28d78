package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	pomoPath  string
	buildErr  error
)

// BuildPomo builds the pomo binary once and returns its path.
func BuildPomo(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "pomo-bin-")
		if err != nil {
			buildErr = err
			return
		}

		pomoPath = filepath.Join(binDir, "pomo")
		cmd := exec.Command("go", "build", "-o", pomoPath, "./cmd/pomo")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build pomo: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return pomoPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("POMO", BuildPomo(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("XDG_CONFIG_HOME", "")
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdConfig writes the contents of a file to the default config path.
func CmdConfig(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("config does not support negation")
	}
	if len(args) != 1 {
		ts.Fatalf("usage: config FILE")
	}

	path := filepath.Join(ts.Getenv("HOME"), ".config", "pomodoro", "config.toml")
	if err := os.WriteFile(path, []byte(ts.ReadFile(args[0])), 0o644); err != nil {
		ts.Fatalf("write config: %v", err)
	}
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
