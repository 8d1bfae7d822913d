package http

import (
	"context"
	"encoding/json"
	"net"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wordguard/internal/platform/config"
	perr "wordguard/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

type echoIn struct {
	Text string `json:"text" validate:"required"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return env
}

func testRouter() Router {
	r := AdaptChi(chi.NewRouter())
	r.Route("/api", func(api Router) {
		api.Post("/echo", JSONHandler(func(_ *stdhttp.Request, in echoIn) (any, error) {
			return map[string]string{"text": in.Text}, nil
		}))
		api.Get("/missing", CallHandler(func(*stdhttp.Request) (any, error) {
			return nil, perr.NotFoundf("no such keyword")
		}))
		api.Group(func(g Router) {
			g.Use(func(next stdhttp.Handler) stdhttp.Handler {
				return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
					w.Header().Set("X-Group", "yes")
					next.ServeHTTP(w, r)
				})
			})
			g.Put("/created", CallHandler(func(*stdhttp.Request) (any, error) { return Created("x"), nil }))
			g.Delete("/gone", Handle(func(*stdhttp.Request) Response { return NoContent() }))
		})
	})
	return r
}

func serve(r Router, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestRoutesAndEnvelope(t *testing.T) {
	r := testRouter()

	rec := serve(r, stdhttp.MethodPost, "/api/echo", `{"text":"hi"}`)
	env := decode(t, rec)
	if rec.Code != stdhttp.StatusOK || env.StatusCode != 200 || env.Data.(map[string]any)["text"] != "hi" {
		t.Fatalf("echo = %d %+v", rec.Code, env)
	}

	rec = serve(r, stdhttp.MethodPost, "/api/echo", `{}`)
	if env = decode(t, rec); rec.Code != stdhttp.StatusBadRequest || env.Field != "text" {
		t.Fatalf("validation = %d %+v", rec.Code, env)
	}

	rec = serve(r, stdhttp.MethodGet, "/api/missing", "")
	if env = decode(t, rec); rec.Code != stdhttp.StatusNotFound || env.Code != perr.ErrorCodeNotFound {
		t.Fatalf("missing = %d %+v", rec.Code, env)
	}

	rec = serve(r, stdhttp.MethodPut, "/api/created", "")
	if rec.Code != stdhttp.StatusCreated || rec.Header().Get("X-Group") != "yes" {
		t.Fatalf("created = %d %v", rec.Code, rec.Header())
	}

	rec = serve(r, stdhttp.MethodDelete, "/api/gone", "")
	if rec.Code != stdhttp.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("gone = %d %q", rec.Code, rec.Body.String())
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	s := NewServer(config.New().Prefix("WGTEST_"))
	s.Router().Get("/ping", CallHandler(func(*stdhttp.Request) (any, error) { return "pong", nil }))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := stdhttp.Get("http://" + ln.Addr().String() + "/ping")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
	if s.Addr() != ":4000" {
		t.Fatalf("default addr = %q", s.Addr())
	}
}
