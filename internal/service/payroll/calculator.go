package payroll

// OvertimeRateMultiplier is the premium applied to overtime hours.
const OvertimeRateMultiplier = 1.5

// Amounts is the money side of one payroll line.
type Amounts struct {
	Base     float64
	Overtime float64
	Total    float64
}

// CalculateAmounts prices the accumulated hours at the employee's hourly
// rate, overtime at time and a half.
func CalculateAmounts(regularHours, overtimeHours, hourlyRate float64) Amounts {
	base := regularHours * hourlyRate
	overtime := overtimeHours * hourlyRate * OvertimeRateMultiplier
	return Amounts{
		Base:     base,
		Overtime: overtime,
		Total:    base + overtime,
	}
}
