package validator

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/ecoleta/pkg/httpx"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fieldName(fld)

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !isValidationErrors(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

// FirstInvalidField returns the first failing field in struct declaration order.
func FirstInvalidField(err error) string {
	var ve validator.ValidationErrors
	if !isValidationErrors(err, &ve) || len(ve) == 0 {
		return ""
	}
	return ve[0].Field()
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	return errors.As(err, target)
}

// fieldName prefers the form tag, then the json tag.
func fieldName(fld reflect.StructField) string {
	if name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]; name != "" {
		return name
	}
	return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "email":
		return "Must be a valid email address"
	case "url":
		return "Must be a valid URL"
	case "numeric":
		return "Must be a numeric value"
	case "alpha":
		return "Must contain only letters"
	case "alphanum":
		return "Must contain only letters and numbers"
	case "latitude":
		return "Must be a latitude between -90 and 90"
	case "longitude":
		return "Must be a longitude between -180 and 180"
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

// ValidateForm parses a multipart (or urlencoded) form from r, copies the value
// of each string field tagged `form:"name"` into a T, and validates it. It
// writes an error response and returns (nil, false) when either step fails:
// 413 for an oversized body, 400 for a malformed form, 422 naming the first
// invalid field. maxMemory bounds how much of the form is held in memory.
func ValidateForm[T any](w http.ResponseWriter, r *http.Request, maxMemory int64) (*T, bool) {
	err := r.ParseMultipartForm(maxMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		err = nil // urlencoded bodies are already parsed into r.Form
	}
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return nil, false
		}
		httpx.JSONError(w, http.StatusBadRequest, "Invalid form")
		return nil, false
	}

	var req T
	v := reflect.ValueOf(&req).Elem()
	if v.Kind() != reflect.Struct {
		panic(fmt.Sprintf("validator: ValidateForm target %T is not a struct", req))
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" || fld.Type.Kind() != reflect.String || !fld.IsExported() {
			continue
		}
		v.Field(i).SetString(r.FormValue(name))
	}

	if err := Validate(&req); err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "Validation failed",
			"field":  FirstInvalidField(err),
			"fields": FormatValidationErrors(err),
		})
		return nil, false
	}
	return &req, true
}
