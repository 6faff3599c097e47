package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func init() {
	Init()
}

type leavePayload struct {
	LeaveReason string `json:"leaveReason" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
}

func TestToHTTP(t *testing.T) {
	t.Run("app error maps directly", func(t *testing.T) {
		appErr := New(CodeInvalidState, "Leave is not awaiting this stage", http.StatusBadRequest)

		httpErr := ToHTTP(appErr)

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, CodeInvalidState, httpErr.Code)
		assert.Equal(t, "Leave is not awaiting this stage", httpErr.Message)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		appErr := Wrap(errors.New("sheet missing"), CodeRosterGap, "No approver configured", http.StatusInternalServerError)
		wrapped := fmt.Errorf("change status: %w", appErr)

		httpErr := ToHTTP(wrapped)

		assert.Equal(t, CodeRosterGap, httpErr.Code)
		assert.Equal(t, "No approver configured", httpErr.Message)
	})

	t.Run("plain error falls back to internal", func(t *testing.T) {
		httpErr := ToHTTP(errors.New("disk full"))

		assert.Equal(t, ErrInternal.HTTPStatus, httpErr.Status)
		assert.Equal(t, ErrInternal.Code, httpErr.Code)
		assert.Equal(t, ErrInternal.Message, httpErr.Message)
	})
}

func TestMapValidationError(t *testing.T) {
	t.Run("required field names the json tag", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(leavePayload{})
		assert.Error(t, err)

		mapped := MapValidationError(err)

		var appErr *AppError
		assert.ErrorAs(t, mapped, &appErr)
		assert.Equal(t, CodeInvalidInput, appErr.Code)
		assert.Equal(t, "Leave Reason is required", appErr.Message)
	})

	t.Run("format violation reports invalid", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(leavePayload{LeaveReason: "family function", Email: "not-an-address"})
		assert.Error(t, err)

		mapped := MapValidationError(err)

		var appErr *AppError
		assert.ErrorAs(t, mapped, &appErr)
		assert.Equal(t, "Email is invalid", appErr.Message)
	})

	t.Run("non-validator error falls back to invalid input", func(t *testing.T) {
		mapped := MapValidationError(errors.New("unexpected EOF"))

		assert.Equal(t, ErrInvalidInput, mapped)
	})
}

func TestFormatFieldName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"leaveReason", "Leave Reason"},
		{"whatsappNumber", "Whatsapp Number"},
		{"employee_code", "Employee Code"},
		{"email", "Email"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, formatFieldName(tc.in))
		})
	}
}
