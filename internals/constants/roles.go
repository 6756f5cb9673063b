package constants

import "fmt"

const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleTeacher     = "teacher"
)

var (
	AllRoles = []string{
		RoleAdmin,
		RoleCoordinator,
		RoleTeacher,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleCoordinator,
	}
)

const (
	ErrOnlyStaffCanAccess = "Only admins or coordinators may access %s."
	ErrOnlyAdminCanAccess = "Only admins may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminCanAccess, feature)
}
