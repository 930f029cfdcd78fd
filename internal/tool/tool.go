package tool

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/workspace-labs/create-workspace/internal/branding"
	"github.com/workspace-labs/create-workspace/internal/options"
)

// Variant identifies one of the fixed tool configurations.
type Variant int

const (
	// VariantSchematics is the standard variant.
	VariantSchematics Variant = iota
	// VariantBazel is the alternate variant selected by --bazel.
	VariantBazel
)

func (v Variant) String() string {
	switch v {
	case VariantBazel:
		return "bazel"
	default:
		return "schematics"
	}
}

// Collection identifiers passed to the generator as --collection.
const (
	SchematicsCollection = "@nrwl/schematics"
	BazelCollection      = "@nrwl/bazel"
)

// CLIPackage is the generator CLI installed next to the collection.
const CLIPackage = "@angular/cli"

// Pinned versions. The bazel variant has not moved to CLI 6.
const (
	SchematicsCLIVersion = "6.0.0"
	BazelToolVersion     = "1.0.3"
	BazelCLIVersion      = "1.7.2"
)

// Descriptor is the selected tool. The same value feeds the sandbox manifest
// and the generator's --collection flag.
type Descriptor struct {
	Variant     Variant
	DisplayName string
	// CollectionID is both the npm package installed in the sandbox and the
	// generator collection.
	CollectionID string
	ToolVersion  string
	CLIVersion   string
}

// Select returns the descriptor for opts. packagedVersion is the version this
// binary was released as; it pins the schematics package.
func Select(opts options.Options, packagedVersion string) Descriptor {
	if opts.UseBazel {
		return Descriptor{
			Variant:      VariantBazel,
			DisplayName:  "Bazel",
			CollectionID: BazelCollection,
			ToolVersion:  BazelToolVersion,
			CLIVersion:   BazelCLIVersion,
		}
	}
	return Descriptor{
		Variant:      VariantSchematics,
		DisplayName:  "Schematics",
		CollectionID: SchematicsCollection,
		ToolVersion:  PackagedVersion(packagedVersion),
		CLIVersion:   SchematicsCLIVersion,
	}
}

// PackagedVersion normalizes a build version for use as an npm dependency.
// Builds without a release version (e.g. "dev") fall back to the version
// embedded in branding.yaml.
func PackagedVersion(buildVersion string) string {
	v, err := semver.NewVersion(strings.TrimPrefix(buildVersion, "v"))
	if err != nil {
		return branding.ToolVersion()
	}
	return v.String()
}
