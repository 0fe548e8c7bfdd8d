package validator_test

import (
	"fitstudio/shared/failure"
	"fitstudio/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingLike struct {
	ClassID     int64  `json:"class_id"     validate:"required,gt=0"`
	ClientName  string `json:"client_name"  validate:"required,notblank,printable,max=100"`
	ClientEmail string `json:"client_email" validate:"required,contact_email,max=120"`
}

func TestIsContactEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{email: "a@x.com", want: true},
		{email: "Alice.Smith+yoga@Example.co.in", want: true},
		{email: "  padded@example.com  ", want: true},
		{email: "", want: false},
		{email: "no-at-sign.example.com", want: false},
		{email: "@example.com", want: false},
		{email: "alice@", want: false},
		{email: "alice@localhost", want: false},
		{email: "alice@@example.com", want: false},
		{email: "alice@.example.com", want: false},
		{email: "alice@example.", want: false},
		{email: "alice@exa..mple.com", want: false},
		{email: "al ice@example.com", want: false},
		{email: "ali\x00ce@example.com", want: false},
		{email: "alice@exam\x1bple.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsContactEmail(tt.email))
		})
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    bookingLike
		wantMsg string
	}{
		{
			name: "valid",
			data: bookingLike{ClassID: 1, ClientName: "Alice", ClientEmail: "a@x.com"},
		},
		{
			name:    "missing class",
			data:    bookingLike{ClientName: "Alice", ClientEmail: "a@x.com"},
			wantMsg: "class_id is required",
		},
		{
			name:    "negative class",
			data:    bookingLike{ClassID: -4, ClientName: "Alice", ClientEmail: "a@x.com"},
			wantMsg: "class_id must be greater than 0",
		},
		{
			name:    "blank name",
			data:    bookingLike{ClassID: 1, ClientName: "   ", ClientEmail: "a@x.com"},
			wantMsg: "client_name is required",
		},
		{
			name:    "nul in name",
			data:    bookingLike{ClassID: 1, ClientName: "Al\u0000ice", ClientEmail: "a@x.com"},
			wantMsg: "client_name must not contain control characters",
		},
		{
			name:    "escape sequence in name",
			data:    bookingLike{ClassID: 1, ClientName: "Alice\x1b[2J", ClientEmail: "a@x.com"},
			wantMsg: "client_name must not contain control characters",
		},
		{
			name:    "malformed email",
			data:    bookingLike{ClassID: 1, ClientName: "Alice", ClientEmail: "alice"},
			wantMsg: "client_email must be a valid email address",
		},
		{
			name:    "name too long",
			data:    bookingLike{ClassID: 1, ClientName: strings.Repeat("a", 101), ClientEmail: "a@x.com"},
			wantMsg: "client_name must be at most 100 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

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

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"class_id":1,"client_name":"Alice","client_email":"a@x.com"}`,
		},
		{
			name:        "invalid email",
			jsonBody:    `{"class_id":1,"client_name":"Alice","client_email":"nope"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"class_id":1,"client_name":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingLike

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
