package insights

import (
	"strings"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
)

// Anomaly is one flagged attendance record. Scores are fixed per rule; there
// is no learned model behind them.
type Anomaly struct {
	AttendanceID string  `json:"attendance_id"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	Rule         string  `json:"rule"`
	Detail       string  `json:"detail"`
	Confidence   float64 `json:"confidence"`
}

const (
	ruleExcessiveOvertime = "excessive_overtime"
	ruleMissingCheckOut   = "missing_check_out"
	ruleVeryShortDay      = "very_short_day"
	ruleNegativeHours     = "negative_hours"
)

// ScoreRecord applies the fixed anomaly rules to one attendance record.
func ScoreRecord(att attendance.Attendance) []Anomaly {
	var anomalies []Anomaly

	flag := func(rule, detail string, confidence float64) {
		anomalies = append(anomalies, Anomaly{
			AttendanceID: att.ID,
			EmployeeID:   att.EmployeeID,
			Date:         att.Date.Format("2006-01-02"),
			Rule:         rule,
			Detail:       detail,
			Confidence:   confidence,
		})
	}

	if att.OvertimeHours != nil && *att.OvertimeHours >= 4 {
		flag(ruleExcessiveOvertime, "overtime at or above 4 hours", 0.9)
	}

	if att.CheckIn != nil && att.CheckOut == nil && att.Status != attendance.StatusAbsent {
		flag(ruleMissingCheckOut, "checked in but never out", 0.8)
	}

	if att.TotalHours != nil && *att.TotalHours > 0 && *att.TotalHours < 3 &&
		att.Status != attendance.StatusHalfDay {
		flag(ruleVeryShortDay, "under 3 worked hours without HALF_DAY status", 0.6)
	}

	if att.RegularHours != nil && *att.RegularHours < 0 {
		flag(ruleNegativeHours, "negative regular hours, likely a bad manual override", 0.95)
	}

	return anomalies
}

// SuggestAssignments distributes employees over shifts round-robin, a naive
// but reproducible balancing suggestion.
func SuggestAssignments(employeeIDs []string, shiftIDs []string) map[string]string {
	suggestions := make(map[string]string, len(employeeIDs))
	if len(shiftIDs) == 0 {
		return suggestions
	}
	for i, employeeID := range employeeIDs {
		suggestions[employeeID] = shiftIDs[i%len(shiftIDs)]
	}
	return suggestions
}

var cannedReplies = []struct {
	keywords []string
	reply    string
}{
	{[]string{"overtime"}, "Overtime is any time worked beyond 8 hours after the break deduction, paid at 1.5x the hourly rate."},
	{[]string{"break"}, "A 1 hour break is deducted automatically from any day longer than 6 hours."},
	{[]string{"half", "half-day", "half_day"}, "Checking in at 11:59 or later marks the day as HALF_DAY automatically."},
	{[]string{"leave", "vacation", "holiday"}, "File a leave request from your dashboard; HR reviews it and you will see the decision there."},
	{[]string{"late"}, "You are marked LATE when you check in after your shift start plus its grace period."},
	{[]string{"payroll", "salary", "pay"}, "Payroll is generated monthly from your recorded regular and overtime hours."},
}

// Answer returns a canned reply by keyword match, or a fallback pointing at HR.
func Answer(question string) string {
	q := strings.ToLower(question)
	for _, canned := range cannedReplies {
		for _, keyword := range canned.keywords {
			if strings.Contains(q, keyword) {
				return canned.reply
			}
		}
	}
	return "I can answer questions about overtime, breaks, half days, leave, lateness and payroll. For anything else, please contact HR."
}
