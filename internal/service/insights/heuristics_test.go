package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
)

func f64(v float64) *float64 {
	return &v
}

func TestScoreRecord_CleanDay(t *testing.T) {
	t.Parallel()

	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)

	att := attendance.Attendance{
		ID:            "a1",
		EmployeeID:    "e1",
		Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckIn:       &in,
		CheckOut:      &out,
		Status:        attendance.StatusPresent,
		TotalHours:    f64(9),
		RegularHours:  f64(8),
		OvertimeHours: f64(0),
	}

	assert.Empty(t, ScoreRecord(att))
}

func TestScoreRecord_ExcessiveOvertime(t *testing.T) {
	t.Parallel()

	att := attendance.Attendance{
		ID:            "a1",
		EmployeeID:    "e1",
		Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:        attendance.StatusPresent,
		OvertimeHours: f64(4),
	}

	anomalies := ScoreRecord(att)
	require.Len(t, anomalies, 1)
	assert.Equal(t, "excessive_overtime", anomalies[0].Rule)
	assert.Equal(t, 0.9, anomalies[0].Confidence)
}

func TestScoreRecord_MissingCheckOut(t *testing.T) {
	t.Parallel()

	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	att := attendance.Attendance{
		ID:         "a1",
		EmployeeID: "e1",
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckIn:    &in,
		Status:     attendance.StatusPresent,
	}

	anomalies := ScoreRecord(att)
	require.Len(t, anomalies, 1)
	assert.Equal(t, "missing_check_out", anomalies[0].Rule)
}

func TestScoreRecord_NegativeRegularHours(t *testing.T) {
	t.Parallel()

	att := attendance.Attendance{
		ID:           "a1",
		EmployeeID:   "e1",
		Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:       attendance.StatusPresent,
		RegularHours: f64(-2),
	}

	anomalies := ScoreRecord(att)
	require.Len(t, anomalies, 1)
	assert.Equal(t, "negative_hours", anomalies[0].Rule)
}

func TestScoreRecord_ShortHalfDayNotFlagged(t *testing.T) {
	t.Parallel()

	att := attendance.Attendance{
		ID:         "a1",
		EmployeeID: "e1",
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusHalfDay,
		TotalHours: f64(2),
	}

	assert.Empty(t, ScoreRecord(att))
}

func TestSuggestAssignments_RoundRobin(t *testing.T) {
	t.Parallel()

	got := SuggestAssignments([]string{"e1", "e2", "e3"}, []string{"s1", "s2"})

	assert.Equal(t, map[string]string{
		"e1": "s1",
		"e2": "s2",
		"e3": "s1",
	}, got)
}

func TestSuggestAssignments_NoShifts(t *testing.T) {
	t.Parallel()

	assert.Empty(t, SuggestAssignments([]string{"e1"}, nil))
}

func TestAnswer(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Answer("how is OVERTIME paid?"), "1.5x")
	assert.Contains(t, Answer("when do I get a break?"), "6 hours")
	assert.Contains(t, Answer("what about half days"), "HALF_DAY")
	assert.Contains(t, Answer("unrelated question"), "contact HR")
}
