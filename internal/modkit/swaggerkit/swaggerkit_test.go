package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "wordguard/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestDecorate(t *testing.T) {
	spec := map[string]any{
		"swagger": "2.0",
		"paths": map[string]any{
			"/scan/all": map[string]any{
				"post": map[string]any{"responses": map[string]any{"400": map[string]any{"description": "mine"}}},
			},
		},
	}
	Decorate(spec, "/api/v1")

	if spec["openapi"] != "3.0.3" || spec["swagger"] != nil {
		t.Fatalf("version = %v", spec["openapi"])
	}
	resp := spec["paths"].(map[string]any)["/scan/all"].(map[string]any)["post"].(map[string]any)["responses"].(map[string]any)
	if resp["400"].(map[string]any)["description"] != "mine" {
		t.Fatalf("existing 400 overwritten")
	}
	if _, ok := resp["500"]; !ok {
		t.Fatalf("500 not added")
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse missing")
	}
}

func TestMount_ServesDoc(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, true)
	Register(func(spec map[string]any) { spec["x-test"] = true })

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec["x-test"] != true || spec["paths"].(map[string]any)["/scan/replace"] == nil {
		t.Fatalf("spec missing mutator or scan paths")
	}

	off := phttp.AdaptChi(chi.NewRouter())
	Mount(off, false)
	rec = httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled docs status = %d", rec.Code)
	}
}
