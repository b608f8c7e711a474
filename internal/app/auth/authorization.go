package auth

import (
	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/pkg/apperrors"
)

// Identity is the authenticated caller, rebuilt from the user
// document on every request by the auth middleware.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  models.Role
}

// Common role allow-lists. Each operation declares its own list;
// there is no hierarchy and admin never implies anything.
var (
	// StaffRoles may manage day-to-day records.
	StaffRoles = []models.Role{models.RoleAdmin, models.RoleWarden, models.RoleStaff}
	// ManagerRoles may create hostels and rooms and delete students.
	ManagerRoles = []models.Role{models.RoleAdmin, models.RoleWarden}
)

// Require fails with ErrPermissionDenied unless the identity's role
// is in the allow-list.
func Require(identity Identity, allowed ...models.Role) error {
	for _, role := range allowed {
		if identity.Role == role {
			return nil
		}
	}
	return apperrors.ErrPermissionDenied
}

// RequireSelfOrRole passes when the role is in the allow-list, or
// when a student acts on a record owned by their own id. Everything
// else is ErrPermissionDenied. This governs student profile reads and
// student-created leave requests and complaints.
func RequireSelfOrRole(identity Identity, ownerID string, allowed ...models.Role) error {
	if Require(identity, allowed...) == nil {
		return nil
	}
	if identity.Role == models.RoleStudent && identity.ID == ownerID {
		return nil
	}
	return apperrors.ErrPermissionDenied
}
