package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceSelf    Permission = "attendance.self_mark"
	PermissionAttendanceMark    Permission = "attendance.mark"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceEdit    Permission = "attendance.edit"
	PermissionAttendanceDelete  Permission = "attendance.delete"
	PermissionAttendanceExport  Permission = "attendance.export"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveReview  Permission = "leave.review"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Payroll
	PermissionPayrollGenerate Permission = "payroll.generate"
	PermissionPayrollViewAll  Permission = "payroll.view_all"

	// Shifts
	PermissionShiftManage Permission = "shift.manage"

	// Operations
	PermissionAuditView    Permission = "audit.view"
	PermissionBackupManage Permission = "backup.manage"
	PermissionInsightsView Permission = "insights.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceSelf,
		PermissionAttendanceMark,
		PermissionAttendanceViewAll,
		PermissionAttendanceEdit,
		PermissionAttendanceDelete,
		PermissionAttendanceExport,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveReview,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionPayrollGenerate,
		PermissionPayrollViewAll,
		PermissionShiftManage,
		PermissionAuditView,
		PermissionBackupManage,
		PermissionInsightsView,
	},
	RoleHR: {
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceSelf,
		PermissionAttendanceMark,
		PermissionAttendanceViewAll,
		PermissionAttendanceEdit,
		PermissionAttendanceExport,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveReview,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionPayrollGenerate,
		PermissionPayrollViewAll,
		PermissionShiftManage,
		PermissionInsightsView,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceSelf,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
