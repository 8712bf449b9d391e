package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/domain/payroll"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusConflict},
		{"already checked out", attendance.ErrAlreadyCheckedOut, http.StatusConflict},
		{"not checked in", attendance.ErrNotCheckedIn, http.StatusConflict},
		{"outside radius", attendance.ErrOutsideAllowedRadius, http.StatusForbidden},
		{"attendance not found", attendance.ErrAttendanceNotFound, http.StatusNotFound},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"overlapping leave", leave.ErrOverlappingLeave, http.StatusConflict},
		{"payroll exists", payroll.ErrPayrollAlreadyExists, http.StatusConflict},
		{"wrapped sentinel", errors.Join(errors.New("context"), attendance.ErrAttendanceNotFound), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.want, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
		})
	}
}

func TestHandleErrorValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "check_in", Message: "must be a valid ISO8601 timestamp"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Details, "check_in")
}
