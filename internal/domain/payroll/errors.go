package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll record not found")
	ErrPayrollAlreadyExists = errors.New("payroll already generated for this period")
)
