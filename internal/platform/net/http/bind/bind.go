// Package bind decodes JSON request bodies and validates them with go-playground/validator,
// reporting failures as project errors with the offending json field
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	perr "wordguard/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// DefaultMaxBytes caps a request body unless JSONOptions says otherwise
const DefaultMaxBytes = 1 << 20

// Validator pairs the validator with its english translator
type Validator struct {
	V     *validator.Validate
	Trans ut.Translator
}

var (
	once sync.Once
	std  *Validator
)

// Get returns the shared validator. It names fields by their json tag and knows the
// single_rune and keyword tags
func Get() *Validator {
	once.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		register(v, trans, "single_rune", "{0} must be exactly one character", func(fl validator.FieldLevel) bool {
			return utf8.RuneCountInString(fl.Field().String()) == 1
		})
		register(v, trans, "keyword", "{0} must not be blank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		register(v, trans, "max", "{0} must be at most {1}", nil)

		std = &Validator{V: v, Trans: trans}
	})
	return std
}

// register installs a translation for tag and, when fn is set, the tag itself
func register(v *validator.Validate, trans ut.Translator, tag, text string, fn validator.Func) {
	if fn != nil {
		_ = v.RegisterValidation(tag, fn)
	}
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// Struct validates v and returns a Validation error naming the first failing field.
// Values that are not structs pass
func Struct(v any) error {
	err := Get().V.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return perr.WithField(perr.Validationf("%s", fe.Translate(Get().Trans)), fe.Field())
	}
	return perr.Validationf("%v", err)
}

// JSONOptions controls ParseJSON
type JSONOptions struct {
	MaxBytes     int64 // 0 means DefaultMaxBytes
	AllowUnknown bool
}

// ParseJSON decodes one JSON value of type T from the body and validates it. An oversize body
// is TooLarge, malformed JSON is a JSON error
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var (
		zero T
		o    JSONOptions
	)
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	if r.Body == nil {
		return zero, perr.JSONErrf("empty body")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, o.MaxBytes))
	if !o.AllowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return zero, perr.TooLargef("request body exceeds %d bytes", o.MaxBytes)
		}
		if errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("empty body")
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}
