package users

import (
	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/pkg/constants"
)

var ErrAdminAccount = domain.NewError(domain.ErrForbidden, "Admin accounts cannot be approved or rejected")

// validateDecision guards membership decisions. Admin accounts are outside the
// approval workflow, so neither self-demotion nor removing the last admin is possible.
func validateDecision(target *domain.User) error {
	if target.Role == constants.Admin {
		return ErrAdminAccount
	}
	return nil
}
