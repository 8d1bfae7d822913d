package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "wordguard/internal/platform/errors"
)

type replaceReq struct {
	Text string `json:"text" validate:"max=20"`
	Mask string `json:"mask" validate:"omitempty,single_rune"`
}

type addReq struct {
	Keywords []string `json:"keywords" validate:"required,min=1,dive,keyword"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_OK(t *testing.T) {
	got, err := ParseJSON[replaceReq](post(`{"text":"you are bad","mask":"#"}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Text != "you are bad" || got.Mask != "#" {
		t.Fatalf("got %+v", got)
	}

	kws, err := ParseJSON[[]string](post(`["a","b"]`))
	if err != nil || len(kws) != 2 {
		t.Fatalf("slice body = %v %v", kws, err)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		opts  []JSONOptions
		code  perr.ErrorCode
		field string
	}{
		{name: "empty", body: "", code: perr.ErrorCodeJSON},
		{name: "malformed", body: `{"text":`, code: perr.ErrorCodeJSON},
		{name: "unknown field", body: `{"txt":"x"}`, code: perr.ErrorCodeJSON},
		{name: "trailing", body: `{"text":"x"} {}`, code: perr.ErrorCodeJSON},
		{name: "wide mask", body: `{"text":"x","mask":"##"}`, code: perr.ErrorCodeValidation, field: "mask"},
		{name: "long text", body: `{"text":"` + strings.Repeat("x", 21) + `"}`, code: perr.ErrorCodeValidation, field: "text"},
		{name: "too large", body: `{"text":"` + strings.Repeat("x", 64) + `"}`, opts: []JSONOptions{{MaxBytes: 16}}, code: perr.ErrorCodeTooLarge},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON[replaceReq](post(tc.body), tc.opts...)
			if !perr.IsCode(err, tc.code) {
				t.Fatalf("err = %v (code %v), want %v", err, perr.CodeOf(err), tc.code)
			}
			if e, _ := perr.As(err); e.Field() != tc.field {
				t.Fatalf("field = %q, want %q", e.Field(), tc.field)
			}
		})
	}
}

func TestStruct_KeywordTag(t *testing.T) {
	if err := Struct(addReq{Keywords: []string{"bad", "worse"}}); err != nil {
		t.Fatalf("valid: %v", err)
	}
	err := Struct(addReq{Keywords: []string{"bad", "  "}})
	if !perr.IsCode(err, perr.ErrorCodeValidation) || !strings.Contains(err.Error(), "must not be blank") {
		t.Fatalf("blank keyword: %v", err)
	}
	if err := Struct(addReq{}); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("missing keywords: %v", err)
	}
}
