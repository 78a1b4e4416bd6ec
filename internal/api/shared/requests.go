package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/exercise-tracker/internal/domain"
)

// maxMultipartMemory bounds the memory used when parsing multipart bodies.
const maxMultipartMemory = 1 << 20

var (
	// Global validator instance for reuse
	validate = newValidator()

	formDecoder = form.NewDecoder()
)

// newValidator reports field names by their form tag so validation messages
// use the names clients send (e.g. "userId", not "UserID").
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	// exercisedate accepts YYYY-MM-DD or RFC 3339.
	if err := v.RegisterValidation("exercisedate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("register exercisedate validation: %v", err))
	}

	return v
}

// Bind collects the request's parameters into dst and validates it.
//
// Query parameters are always read. For requests with a body, fields are read
// from JSON or from a urlencoded/multipart form depending on Content-Type, and
// body fields override query fields of the same name. dst's fields are matched
// by their `form` tag.
func Bind(r *http.Request, dst interface{}) error {
	values, err := requestValues(r)
	if err != nil {
		return err
	}

	if err := formDecoder.Decode(dst, values); err != nil {
		return domain.NewValidationError("request", "has invalid format", domain.ErrInvalidFormat)
	}

	return ValidateRequest(dst)
}

// ValidateRequest validates the given struct using the validator package.
// Field errors are reported as a *domain.ValidationError for the first
// offending field.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if vr, ok := v.(interface{ Validate() error }); ok {
		return vr.Validate()
	}

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return domain.NewValidationError(fe.Field(), validationTagMessage(fe.Tag()), domain.ErrValidation)
	}
	return err
}

// validationTagMessage maps validation tags to user-friendly error messages
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "numeric":
		return "must be a number"
	case "number":
		return "must be a non-negative integer"
	case "exercisedate":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}

func requestValues(r *http.Request) (url.Values, error) {
	values := url.Values{}
	for k, v := range r.URL.Query() {
		values[k] = v
	}

	if r.Body == nil || r.Method == http.MethodGet || r.Method == http.MethodHead {
		return values, nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var body url.Values
	switch mediaType {
	case "application/json":
		var err error
		if body, err = jsonValues(r.Body); err != nil {
			return nil, err
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, domain.NewValidationError("request", "has invalid format", domain.ErrInvalidFormat)
		}
		body = r.PostForm
	default:
		if err := r.ParseForm(); err != nil {
			return nil, domain.NewValidationError("request", "has invalid format", domain.ErrInvalidFormat)
		}
		body = r.PostForm
	}

	for k, v := range body {
		values[k] = v
	}
	return values, nil
}

// jsonValues flattens a JSON object of scalars into url.Values. Numbers keep
// their literal text; null members are treated as absent.
func jsonValues(body io.Reader) (url.Values, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var obj map[string]interface{}
	if err := dec.Decode(&obj); err != nil {
		if errors.Is(err, io.EOF) {
			return url.Values{}, nil
		}
		return nil, domain.NewValidationError("request", "has invalid format", domain.ErrInvalidFormat)
	}

	values := make(url.Values, len(obj))
	for k, raw := range obj {
		switch v := raw.(type) {
		case nil:
		case string:
			values.Set(k, v)
		case json.Number:
			values.Set(k, v.String())
		case bool:
			values.Set(k, strconv.FormatBool(v))
		default:
			return nil, domain.NewValidationError(k, "has invalid format", domain.ErrInvalidFormat)
		}
	}
	return values, nil
}
