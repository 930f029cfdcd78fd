package environment

import (
	"context"
	"fmt"

	"github.com/workspace-labs/create-workspace/internal/errors"
	"github.com/workspace-labs/create-workspace/internal/logging"
	"github.com/workspace-labs/create-workspace/internal/runtime"
)

// Validator confirms the selected package manager is installed and recent enough.
type Validator struct {
	Exec runtime.Executor
	// Minimum is the lowest accepted npm version; defaults to MinimumNPMVersion.
	Minimum string
}

// NewValidator returns a Validator enforcing MinimumNPMVersion.
func NewValidator(exec runtime.Executor) *Validator {
	return &Validator{Exec: exec, Minimum: MinimumNPMVersion}
}

// Validate runs the version query for npm and compares the result against
// the minimum. Yarn is not checked. Output that does not parse as a version
// is treated the same as a missing binary.
func (v *Validator) Validate(ctx context.Context, pm runtime.PackageManager) error {
	if !pm.IsStandard() {
		logging.Debug("skipping package manager check", "manager", pm.Name)
		return nil
	}

	minimum := v.Minimum
	if minimum == "" {
		minimum = MinimumNPMVersion
	}

	out, err := v.Exec.Execute(ctx, pm.VersionCommand())
	if err != nil {
		return errors.PackageManagerNotFound(pm.Name, err)
	}
	if out.ExitCode != 0 {
		return errors.PackageManagerNotFound(pm.Name,
			fmt.Errorf("%s --version exited with code %d", pm.Name, out.ExitCode))
	}

	reported, err := ParseVersion(out.Stdout)
	if err != nil {
		return errors.PackageManagerNotFound(pm.Name, err)
	}

	below, err := IsBelowMinimum(reported.String(), minimum)
	if err != nil {
		return fmt.Errorf("comparing %s version: %w", pm.Name, err)
	}
	if below {
		return errors.PackageManagerTooOld(pm.Name, reported.String(), minimum)
	}

	logging.Debug("package manager ok", "manager", pm.Name, "version", reported.String())
	return nil
}
