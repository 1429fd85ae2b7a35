// Package integration provides CLI integration tests for larder.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// larderBin is the path to the built larder binary.
	larderBin string
	// buildErr captures any build error.
	buildErr error
)

// TestMain builds the larder binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "larder-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}
	larderBin = filepath.Join(tmpDir, "larder")

	cmd := exec.Command("go", "build", "-o", larderBin, "./cmd/larder")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = err
		os.Stderr.Write(output)
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// findProjectRoot finds the project root by walking up and looking for go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// testEnv holds isolated config and data directories for one test.
type testEnv struct {
	t         *testing.T
	ConfigDir string
	DataDir   string
}

// newTestEnv creates isolated directories so tests never touch the real
// platform config or history.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root := t.TempDir()
	return &testEnv{
		t:         t,
		ConfigDir: filepath.Join(root, "config"),
		DataDir:   filepath.Join(root, "data"),
	}
}

// runResult holds the output of one larder invocation.
type runResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// run executes the larder binary with isolated directories.
func (e *testEnv) run(args ...string) runResult {
	e.t.Helper()

	full := append([]string{"--config-dir", e.ConfigDir, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(larderBin, full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("run larder %v: %v", args, err)
	}

	return runResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}
}

// mustRun executes larder and fails the test on a non-zero exit.
func (e *testEnv) mustRun(args ...string) runResult {
	e.t.Helper()
	result := e.run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("larder %v exited %d\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}
