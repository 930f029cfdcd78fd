package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "create-workspace" {
		t.Errorf("CLIName() = %q, want %q", got, "create-workspace")
	}
	if got := EnvPrefix(); got != "CREATE_WORKSPACE" {
		t.Errorf("EnvPrefix() = %q, want %q", got, "CREATE_WORKSPACE")
	}
	if ToolVersion() == "" {
		t.Error("ToolVersion() should not be empty")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("yarn"); got != "CREATE_WORKSPACE_YARN" {
		t.Errorf("EnvVar(\"yarn\") = %q, want %q", got, "CREATE_WORKSPACE_YARN")
	}
}
