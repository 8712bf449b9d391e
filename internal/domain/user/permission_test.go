package user

import "testing"

func TestHasPermission(t *testing.T) {
	cases := []struct {
		name       string
		role       Role
		permission Permission
		want       bool
	}{
		{"admin can manage backups", RoleAdmin, PermissionBackupManage, true},
		{"admin can view audit logs", RoleAdmin, PermissionAuditView, true},
		{"hr can mark attendance", RoleHR, PermissionAttendanceMark, true},
		{"hr can generate payroll", RoleHR, PermissionPayrollGenerate, true},
		{"hr cannot delete attendance", RoleHR, PermissionAttendanceDelete, false},
		{"hr cannot manage backups", RoleHR, PermissionBackupManage, false},
		{"employee can self mark", RoleEmployee, PermissionAttendanceSelf, true},
		{"employee can request leave", RoleEmployee, PermissionLeaveCreate, true},
		{"employee cannot view all attendance", RoleEmployee, PermissionAttendanceViewAll, false},
		{"unknown role has nothing", Role("CONTRACTOR"), PermissionViewOwnProfile, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := HasPermission(c.role, c.permission); got != c.want {
				t.Errorf("HasPermission(%s, %s) = %v, want %v", c.role, c.permission, got, c.want)
			}
		})
	}
}
