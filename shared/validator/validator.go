package validator

import (
	"encoding/json"
	"fitstudio/shared/failure"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// report json names so messages read "client_email is required"
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	if err := validate.RegisterValidation("notblank", func(fl val.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("printable", func(fl val.FieldLevel) bool {
		return !hasControl(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("contact_email", func(fl val.FieldLevel) bool {
		return IsContactEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// IsContactEmail applies the light structural email policy: one "@", a
// non-empty local part, and a dotted domain without whitespace or control
// characters.
func IsContactEmail(email string) bool {
	email = strings.TrimSpace(email)
	if strings.IndexFunc(email, unicode.IsSpace) >= 0 || hasControl(email) {
		return false
	}

	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" || strings.Contains(domain, "@") {
		return false
	}

	dot := strings.LastIndex(domain, ".")

	return dot > 0 && dot < len(domain)-1 && !strings.HasPrefix(domain, ".") && !strings.Contains(domain, "..")
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	err := decoder.Decode(data)
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
