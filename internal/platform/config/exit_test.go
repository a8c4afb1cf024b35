package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/netrey95-hub/skills/internal/platform/config"
)

// TestExitf_ExitsWithCode verifies that Exitf writes to stderr and exits
// with the given code. It uses the subprocess test pattern because os.Exit
// cannot be intercepted in-process.
func TestExitf_ExitsWithCode(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf(2, "fatal: %s", "bounds infeasible")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 2 {
		t.Fatalf("expected exit code 2, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: bounds infeasible") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: bounds infeasible", string(out))
	}
}
