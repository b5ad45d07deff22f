// Package infra builds the casbin enforcer backing record-level view
// permission checks.
package infra

import (
	"fmt"

	"github.com/casbin/casbin/v2"
)

// NewEnforcer loads the role-with-tenant-domain model from modelPath. No
// policy adapter is attached: authz.Service installs the tenant's grants
// before each check, falling back to the built-in role defaults.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	e, err := casbin.NewEnforcer(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load authz model %s: %w", modelPath, err)
	}
	return e, nil
}
