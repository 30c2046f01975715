package terminal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Idesmi/rpmlint/internal/terminal"
)

// clearCIEnv unsets the CI indicators so tests are not affected by the
// environment they happen to run in.
func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"CI", "CONTINUOUS_INTEGRATION", "GITHUB_ACTIONS", "GITLAB_CI",
		"JENKINS_URL", "BUILDKITE", "TF_BUILD",
	} {
		t.Setenv(name, "")
	}
}

func TestIsInteractive_ForceOverrides(t *testing.T) {
	clearCIEnv(t)

	forced := terminal.NewInteractiveDetector(terminal.DetectorOptions{ForceInteractive: true})
	assert.True(t, forced.IsInteractive())

	quiet := terminal.NewInteractiveDetector(terminal.DetectorOptions{ForceNonInteractive: true})
	assert.False(t, quiet.IsInteractive())
}

func TestIsCIEnvironment(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		want   bool
	}{
		{"github actions", "GITHUB_ACTIONS", "true", true},
		{"jenkins", "JENKINS_URL", "https://ci.example.com", true},
		{"generic CI truthy", "CI", "1", true},
		{"CI explicitly false", "CI", "false", false},
		{"CI explicitly zero", "CI", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCIEnv(t)
			t.Setenv(tt.envVar, tt.value)

			detector := terminal.NewInteractiveDetector(terminal.DetectorOptions{})
			assert.Equal(t, tt.want, detector.IsCIEnvironment())
		})
	}
}

func TestIsInteractive_CIWinsOverTerminal(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("CI", "true")

	detector := terminal.NewInteractiveDetector(terminal.DetectorOptions{})
	assert.False(t, detector.IsInteractive())
}
