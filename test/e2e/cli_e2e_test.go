package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and verifies it end to end.
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	binName := "rotcoef"
	if runtime.GOOS == "windows" {
		binName = "rotcoef.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; the module root is two
	// levels up.
	build := exec.Command("go", "build", "-o", binPath, "./cmd/rotcoef")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build rotcoef: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  []string // substring matches (case-insensitive)
		wantCode int
	}{
		{
			name:     "Default Comparison",
			args:     []string{"--quiet"},
			wantOut:  []string{"mode: direct", "mode: hyperdual", "mode: series", "theta", "b2"},
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  []string{"usage"},
			wantCode: 0,
		},
		{
			name:     "Single Mode Series",
			args:     []string{"--mode", "series", "--quiet", "--points", "11"},
			wantOut:  []string{"mode: series"},
			wantCode: 0,
		},
		{
			name:     "Custom Grid",
			args:     []string{"--quiet", "--points", "5", "--step", "0.1", "--center", "1"},
			wantOut:  []string{"1.0000000e+00"},
			wantCode: 0,
		},
		{
			name:     "Verbose Banner",
			args:     []string{"--points", "5"},
			wantOut:  []string{"execution configuration", "sweep summary", "agree within"},
			wantCode: 0,
		},
		{
			name:     "Unknown Mode",
			args:     []string{"--mode", "symbolic"},
			wantOut:  []string{"unknown mode"},
			wantCode: 4,
		},
		{
			name:     "Invalid Points",
			args:     []string{"--points", "0"},
			wantOut:  []string{"points"},
			wantCode: 4,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  []string{"rotcoef"},
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else {
				if err == nil {
					t.Errorf("Expected exit code %d, but command succeeded.\nOutput: %s", tt.wantCode, outStr)
				} else if exitErr, ok := err.(*exec.ExitError); ok {
					if exitErr.ExitCode() != tt.wantCode {
						t.Errorf("Exit code = %d, want %d.\nOutput: %s", exitErr.ExitCode(), tt.wantCode, outStr)
					}
				}
			}

			for _, want := range tt.wantOut {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(want)) {
					t.Errorf("Output missing %q.\nGot:\n%s", want, outStr)
				}
			}
		})
	}
}

// TestCLI_E2E_OutputFile verifies the --output export path.
func TestCLI_E2E_OutputFile(t *testing.T) {
	tmpDir := t.TempDir()
	binPath := filepath.Join(tmpDir, "rotcoef")

	build := exec.Command("go", "build", "-o", binPath, "./cmd/rotcoef")
	build.Dir = "../.."
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build rotcoef: %v\n%s", err, out)
	}

	tablePath := filepath.Join(tmpDir, "table.txt")
	cmd := exec.Command(binPath, "--quiet", "--points", "5", "--output", tablePath)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Command failed: %v\n%s", err, out)
	}

	data, err := os.ReadFile(tablePath)
	if err != nil {
		t.Fatalf("Output file not written: %v", err)
	}
	if !strings.Contains(string(data), "# Rodrigues Coefficient Comparison") {
		t.Errorf("file missing header:\n%s", data)
	}
}
