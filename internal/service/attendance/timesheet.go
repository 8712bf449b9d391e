package attendance

import (
	"math"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
)

// Workday constants. The break deduction is a fixed rule, not configurable.
const (
	StandardWorkdayHours = 8.0
	BreakThresholdHours  = 6.0
	BreakDeductionHours  = 1.0
)

// Hours holds the derived time-accounting buckets for a completed day.
type Hours struct {
	Total    float64
	Regular  float64
	Overtime float64
	Break    float64
}

// ComputeHours derives the hour buckets from a check-in/check-out pair.
// It returns nil when either timestamp is missing: no partial computation.
//
// The derivation, applied on every recomputation from full state:
//
//	total    = checkOut - checkIn, in hours
//	break    = 1 if total > 6, else 0
//	actual   = total - break
//	regular  = min(actual, 8)
//	overtime = max(actual - 8, 0)
//
// A positive manualOvertime replaces the derived overtime and regular
// becomes min(actual - manualOvertime, 8), which is deliberately left
// unclamped below zero. Callers are responsible for supplying ordered
// timestamps; a reversed pair propagates negative values unchanged.
func ComputeHours(checkIn, checkOut *time.Time, manualOvertime *float64) *Hours {
	if checkIn == nil || checkOut == nil {
		return nil
	}

	total := checkOut.Sub(*checkIn).Hours()

	breakHours := 0.0
	if total > BreakThresholdHours {
		breakHours = BreakDeductionHours
	}

	actual := total - breakHours
	regular := math.Min(actual, StandardWorkdayHours)
	overtime := math.Max(actual-StandardWorkdayHours, 0)

	if manualOvertime != nil && *manualOvertime > 0 {
		overtime = *manualOvertime
		regular = math.Min(actual-*manualOvertime, StandardWorkdayHours)
	}

	return &Hours{
		Total:    total,
		Regular:  regular,
		Overtime: overtime,
		Break:    breakHours,
	}
}

// DeriveStatus forces HALF_DAY for any check-in at or after 11:59 local
// time, regardless of what the caller requested. The cutoff looks only at
// the check-in's own wall clock, so the caller decides the timezone by
// handing in a localized timestamp.
func DeriveStatus(requested attendance.Status, checkIn *time.Time) attendance.Status {
	if checkIn == nil {
		return requested
	}

	hour, minute := checkIn.Hour(), checkIn.Minute()
	if hour >= 12 || (hour == 11 && minute >= 59) {
		return attendance.StatusHalfDay
	}

	return requested
}
