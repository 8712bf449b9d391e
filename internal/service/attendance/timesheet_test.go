package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
)

func at(hour, minute int) *time.Time {
	t := time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
	return &t
}

func f64(v float64) *float64 {
	return &v
}

func TestComputeHours_MissingCheckOut(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ComputeHours(at(9, 0), nil, nil))
	assert.Nil(t, ComputeHours(nil, at(18, 0), nil))
	assert.Nil(t, ComputeHours(nil, nil, nil))
}

func TestComputeHours_NineHourDay(t *testing.T) {
	t.Parallel()

	// 09:00 -> 18:00: 9h span, 1h break, a full regular day, no overtime.
	hours := ComputeHours(at(9, 0), at(18, 0), nil)
	require.NotNil(t, hours)

	assert.InDelta(t, 9.0, hours.Total, 1e-9)
	assert.InDelta(t, 1.0, hours.Break, 1e-9)
	assert.InDelta(t, 8.0, hours.Regular, 1e-9)
	assert.InDelta(t, 0.0, hours.Overtime, 1e-9)
}

func TestComputeHours_ElevenHourDay(t *testing.T) {
	t.Parallel()

	// 09:00 -> 20:00: 11h span, 1h break, 8h regular, 2h overtime.
	hours := ComputeHours(at(9, 0), at(20, 0), nil)
	require.NotNil(t, hours)

	assert.InDelta(t, 11.0, hours.Total, 1e-9)
	assert.InDelta(t, 1.0, hours.Break, 1e-9)
	assert.InDelta(t, 8.0, hours.Regular, 1e-9)
	assert.InDelta(t, 2.0, hours.Overtime, 1e-9)
}

func TestComputeHours_ShortDayNoBreak(t *testing.T) {
	t.Parallel()

	// Spans at or under 6h get no break deduction.
	hours := ComputeHours(at(9, 0), at(14, 30), nil)
	require.NotNil(t, hours)

	assert.InDelta(t, 5.5, hours.Total, 1e-9)
	assert.InDelta(t, 0.0, hours.Break, 1e-9)
	assert.InDelta(t, 5.5, hours.Regular, 1e-9)
	assert.InDelta(t, 0.0, hours.Overtime, 1e-9)
}

func TestComputeHours_BreakThresholdBoundary(t *testing.T) {
	t.Parallel()

	// Exactly 6h: no break (rule is strictly greater than).
	exact := ComputeHours(at(9, 0), at(15, 0), nil)
	require.NotNil(t, exact)
	assert.InDelta(t, 0.0, exact.Break, 1e-9)

	// Just over 6h: break kicks in.
	over := ComputeHours(at(9, 0), at(15, 1), nil)
	require.NotNil(t, over)
	assert.InDelta(t, 1.0, over.Break, 1e-9)
}

func TestComputeHours_ManualOvertimeOverride(t *testing.T) {
	t.Parallel()

	// 9h span, break 1, actual 8. Override of 2 replaces derived overtime
	// and shrinks regular to 6.
	hours := ComputeHours(at(9, 0), at(18, 0), f64(2))
	require.NotNil(t, hours)

	assert.InDelta(t, 9.0, hours.Total, 1e-9)
	assert.InDelta(t, 1.0, hours.Break, 1e-9)
	assert.InDelta(t, 6.0, hours.Regular, 1e-9)
	assert.InDelta(t, 2.0, hours.Overtime, 1e-9)
}

func TestComputeHours_ZeroManualOvertimeIgnored(t *testing.T) {
	t.Parallel()

	hours := ComputeHours(at(9, 0), at(20, 0), f64(0))
	require.NotNil(t, hours)

	// Zero override means the derived overtime stands.
	assert.InDelta(t, 2.0, hours.Overtime, 1e-9)
	assert.InDelta(t, 8.0, hours.Regular, 1e-9)
}

func TestComputeHours_LargeManualOvertimeUnclamped(t *testing.T) {
	t.Parallel()

	// 5h span, no break, actual 5, override 7: regular goes negative.
	// Deliberately not clamped; the boundary caps the override instead.
	hours := ComputeHours(at(9, 0), at(14, 0), f64(7))
	require.NotNil(t, hours)

	assert.InDelta(t, 7.0, hours.Overtime, 1e-9)
	assert.InDelta(t, -2.0, hours.Regular, 1e-9)
}

func TestComputeHours_ReversedPairPropagatesNegative(t *testing.T) {
	t.Parallel()

	// The calculator never validates ordering; callers guard it.
	hours := ComputeHours(at(18, 0), at(9, 0), nil)
	require.NotNil(t, hours)

	assert.InDelta(t, -9.0, hours.Total, 1e-9)
	assert.InDelta(t, 0.0, hours.Break, 1e-9)
	assert.InDelta(t, -9.0, hours.Regular, 1e-9)
	assert.InDelta(t, 0.0, hours.Overtime, 1e-9)
}

func TestComputeHours_Pure(t *testing.T) {
	t.Parallel()

	in, out := at(8, 15), at(19, 45)
	first := ComputeHours(in, out, f64(1.5))
	second := ComputeHours(in, out, f64(1.5))

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestDeriveStatus_HalfDayCutoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		checkIn   *time.Time
		requested attendance.Status
		want      attendance.Status
	}{
		{"morning check-in keeps requested", at(9, 30), attendance.StatusLate, attendance.StatusLate},
		{"just before cutoff keeps requested", at(11, 58), attendance.StatusPresent, attendance.StatusPresent},
		{"11:59 forces half day", at(11, 59), attendance.StatusPresent, attendance.StatusHalfDay},
		{"noon forces half day", at(12, 0), attendance.StatusPresent, attendance.StatusHalfDay},
		{"afternoon forces half day", at(12, 15), attendance.StatusPresent, attendance.StatusHalfDay},
		{"late requested also forced", at(15, 0), attendance.StatusLate, attendance.StatusHalfDay},
		{"no check-in keeps requested", nil, attendance.StatusAbsent, attendance.StatusAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DeriveStatus(tt.requested, tt.checkIn))
		})
	}
}

func TestDeriveStatus_UsesWallClockOfTimestamp(t *testing.T) {
	t.Parallel()

	// 12:15 in Jakarta is 05:15 UTC; the rule reads the localized clock,
	// not the UTC instant.
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	local := time.Date(2025, 3, 10, 12, 15, 0, 0, jakarta)
	assert.Equal(t, attendance.StatusHalfDay, DeriveStatus(attendance.StatusPresent, &local))

	utc := local.UTC()
	assert.Equal(t, attendance.StatusPresent, DeriveStatus(attendance.StatusPresent, &utc))
}
