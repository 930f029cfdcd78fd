package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/workspace-labs/create-workspace/internal/tool"
)

// FileName is the manifest file the package manager reads.
const FileName = "package.json"

// License is the license field of every sandbox manifest.
const License = "MIT"

// SandboxManifest lists exactly the two pinned packages a sandbox installs.
type SandboxManifest struct {
	Dependencies map[string]string `json:"dependencies"`
	License      string            `json:"license"`
}

// ForTool builds the manifest for d: the collection package at the tool
// version and the generator CLI at its companion version.
func ForTool(d tool.Descriptor) SandboxManifest {
	return SandboxManifest{
		Dependencies: map[string]string{
			d.CollectionID:  d.ToolVersion,
			tool.CLIPackage: d.CLIVersion,
		},
		License: License,
	}
}

// Marshal serializes the manifest. Map keys are emitted in sorted order.
func (m SandboxManifest) Marshal() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("serializing sandbox manifest: %w", err)
	}
	return data, nil
}

// Write validates the manifest and writes it to dir/package.json.
func (m SandboxManifest) Write(dir string) (string, error) {
	data, err := m.Marshal()
	if err != nil {
		return "", err
	}

	result, err := Validate(data)
	if err != nil {
		return "", fmt.Errorf("validating sandbox manifest: %w", err)
	}
	if !result.Valid {
		return "", fmt.Errorf("invalid sandbox manifest: %s", result)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
