// Package validate checks the shape of incoming JSON payloads before they
// reach the service layer. Failures are reported as a field-to-reason map
// rather than raised, so handlers can turn them into 400 responses.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a payload field name to the reason it was rejected.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, reason := range e {
		parts = append(parts, field+": "+reason)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// Policy controls how payloads are decoded. AllowUnknown declares whether
// fields absent from the target struct are ignored or rejected.
type Policy struct {
	AllowUnknown bool
}

// DefaultPolicy accepts and ignores unknown fields, matching the API contract.
var DefaultPolicy = Policy{AllowUnknown: true}

var check = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSON decodes a JSON body into dst. A wrong-typed field is reported as
// FieldErrors naming the field; malformed JSON is reported as a plain error.
func (p Policy) DecodeJSON(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	if !p.AllowUnknown {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return FieldErrors{typeErr.Field: fmt.Sprintf("expected %s, got %s", jsonTypeName(typeErr.Type), typeErr.Value)}
		}
		return err
	}

	return nil
}

// Struct runs declarative `validate` tag checks on v, translating any
// violations into FieldErrors keyed by the JSON field name.
func Struct(v any) error {
	err := check.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := FieldErrors{}
	for _, fe := range verrs {
		name := jsonFieldName(v, fe.StructField())
		switch fe.Tag() {
		case "required":
			fields[name] = "missing required field"
		default:
			fields[name] = "failed " + fe.Tag() + " check"
		}
	}
	return fields
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

func jsonFieldName(v any, structField string) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag != "" && tag != "-" {
			return tag
		}
	}
	return strings.ToLower(structField)
}
