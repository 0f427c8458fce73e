package validator_test

import (
	"strings"
	"testing"

	"passat/shared/failure"
	"passat/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name        string `json:"name"        validate:"required,max=50"`
	Email       string `json:"email"       validate:"omitempty,email"`
	ArrivalDate string `json:"arrival"     validate:"required,date"`
	CheckIn     string `json:"check_in"    validate:"omitempty,clocktime"`
	Status      string `json:"status"      validate:"omitempty,oneof=planning confirmed cancelled"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid request",
			body: `{"name":"Seminar","email":"info@example.com","arrival":"2025-03-10","check_in":"14:00","status":"planning"}`,
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantErr: "failed to decode request body",
		},
		{
			name:    "missing required field",
			body:    `{"arrival":"2025-03-10"}`,
			wantErr: "Name is required",
		},
		{
			name:    "invalid date",
			body:    `{"name":"Seminar","arrival":"10.03.2025"}`,
			wantErr: "ArrivalDate must be a date in YYYY-MM-DD format",
		},
		{
			name:    "invalid clock time",
			body:    `{"name":"Seminar","arrival":"2025-03-10","check_in":"25:99"}`,
			wantErr: "CheckIn must be a time in HH:MM format",
		},
		{
			name:    "invalid status",
			body:    `{"name":"Seminar","arrival":"2025-03-10","status":"done"}`,
			wantErr: "Status must be one of planning confirmed cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req sampleRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-01-31", "date"))
	assert.Error(t, validator.ValidateVar("2025-02-30", "date"))
	assert.Error(t, validator.ValidateVar("not-a-date", "date"))
	assert.NoError(t, validator.ValidateVar("11:00", "clocktime"))
}
