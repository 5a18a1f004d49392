package constants

import "fmt"

// Actor roles. Every ad and audit log row is tagged with one of these.
const (
	RoleUser     = "user"
	RoleSubadmin = "subadmin"
	RoleAdmin    = "admin"
	RoleSystem   = "system"
)

// Error message templates for role checks
const (
	ErrOnlyAdminsCanAccess = "Only admins may access %s."
	ErrOnlyStaffCanAccess  = "Only admins or subadmins may access %s."
	ErrInvalidCreatorRole  = "Invalid created_by_role"
	ErrUserBlocked         = "User is blocked. Action not allowed."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// Grouped role slices
// ==========================
var (
	CreatorRoles = []string{
		RoleUser,
		RoleSubadmin,
		RoleAdmin,
	}

	StaffRoles = []string{
		RoleSubadmin,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsCreatorRole(role string) bool {
	for _, r := range CreatorRoles {
		if r == role {
			return true
		}
	}
	return false
}
