package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "wordguard/internal/platform/errors"
	pnet "wordguard/internal/platform/net"
)

type tokenPort map[string]string

func (p tokenPort) Parse(r *http.Request) (string, error) {
	if sub, ok := p[r.Header.Get("Authorization")]; ok {
		return sub, nil
	}
	return "", perr.Unauthorizedf("invalid bearer token")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestAuth(t *testing.T) {
	var seen string
	h := Auth(tokenPort{"Bearer s3cret": "admin"}, writeJSON)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.Principal(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/keywords", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || seen != "admin" {
		t.Fatalf("authorized: code=%d subject=%q", rec.Code, seen)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/keywords", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: code=%d", rec.Code)
	}
	var body pnet.Wire
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Code != perr.ErrorCodeUnauthorized {
		t.Fatalf("body = %+v %v", body, err)
	}

	pass := Auth(nil, writeJSON)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec = httptest.NewRecorder()
	pass.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("nil port should pass, got %d", rec.Code)
	}
}

func TestRecoverJSON(t *testing.T) {
	h := RequestID()(RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(errors.New("boom"))
	})))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "req-7")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rec.Code)
	}
	var body pnet.Wire
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != perr.ErrorCodePanic || body.RequestID != "req-7" || rec.Header().Get("X-Request-ID") != "req-7" {
		t.Fatalf("body = %+v", body)
	}
}

func TestAccessLogPassesThrough(t *testing.T) {
	h := AccessLog(AccessLogOptions{Skip: []string{"/health"}})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("tea"))
	}))
	for _, p := range []string{"/scan", "/health"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		if rec.Code != http.StatusTeapot || rec.Body.String() != "tea" {
			t.Fatalf("%s: code=%d body=%q", p, rec.Code, rec.Body.String())
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	h := CORS(CORSOptions{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/scan/contains", nil)
	req.Header.Set("Origin", "https://mod.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("allow origin = %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}
