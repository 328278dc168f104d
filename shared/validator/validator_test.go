package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"lodge/shared/failure"
	"lodge/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stayRequest struct {
	GuestName   string `json:"guest_name"    validate:"required"`
	GuestEmail  string `json:"guest_email"   validate:"required,email"`
	CheckInDate string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	Duration    int    `json:"duration"      validate:"required,oneof=12 24"`
	ExtraAdults int    `json:"extra_adults"  validate:"gte=0"`
}

func validStay() stayRequest {
	return stayRequest{
		GuestName:   "Juan Dela Cruz",
		GuestEmail:  "juan@example.com",
		CheckInDate: "2030-05-01",
		Duration:    12,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *stayRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(*stayRequest) {}},
		{name: "missing guest name", mutate: func(r *stayRequest) { r.GuestName = "" }, wantMsg: "guest_name is required"},
		{name: "bad email", mutate: func(r *stayRequest) { r.GuestEmail = "nope" }, wantMsg: "guest_email must be a valid email address"},
		{name: "bad date", mutate: func(r *stayRequest) { r.CheckInDate = "01/05/2030" }, wantMsg: "check_in_date must match the format 2006-01-02"},
		{name: "bad duration", mutate: func(r *stayRequest) { r.Duration = 6 }, wantMsg: "duration must be one of 12 24"},
		{name: "negative extra adults", mutate: func(r *stayRequest) { r.ExtraAdults = -1 }, wantMsg: "extra_adults must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStay()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate_DecodesBody(t *testing.T) {
	body := `{"guest_name":"Ana","guest_email":"ana@example.com","check_in_date":"2030-01-02","duration":24}`

	var req stayRequest
	require.NoError(t, validator.Validate(strings.NewReader(body), &req))
	assert.Equal(t, "Ana", req.GuestName)
	assert.Equal(t, 24, req.Duration)
}

func TestValidate_MalformedJSON(t *testing.T) {
	var req stayRequest

	err := validator.Validate(strings.NewReader(`{"guest_name":`), &req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "failed to decode request body")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("CONFIRMED", "oneof=DRAFT CONFIRMED"))

	err := validator.ValidateVar("BOGUS", "oneof=DRAFT CONFIRMED")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidate_Base64Mimetype(t *testing.T) {
	type upload struct {
		Image string `json:"image" validate:"mimetypes=image/png image/jpeg"`
	}

	assert.NoError(t, validator.ValidateStruct(&upload{Image: "data:image/png;base64,AAAA"}))
	assert.Error(t, validator.ValidateStruct(&upload{Image: "data:text/plain;base64,AAAA"}))
	assert.Error(t, validator.ValidateStruct(&upload{Image: "not-a-data-uri"}))
}
