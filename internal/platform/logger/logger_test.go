package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"loud":    zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{
		Level:     "debug",
		Format:    "json",
		Service:   "wordguard",
		Component: "scan",
		Writer:    &buf,
		Static:    map[string]string{"region": "eu"},
	})
	l.Info().Int("matches", 2).Msg("scanned")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log line is not json: %v (%q)", err, buf.String())
	}
	for k, want := range map[string]any{
		"service": "wordguard", "component": "scan", "region": "eu", "message": "scanned", "level": "info",
	} {
		if rec[k] != want {
			t.Fatalf("%s = %v, want %v", k, rec[k], want)
		}
	}
	if rec["matches"] != float64(2) {
		t.Fatalf("matches = %v", rec["matches"])
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warn", Format: "json", Writer: &buf})
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("level filter: %q", buf.String())
	}
}

func TestWithRequestAndC(t *testing.T) {
	if WithRequest(context.Background(), "") != context.Background() {
		t.Fatalf("empty id should not wrap ctx")
	}
	ctx := WithRequest(context.Background(), "req-1")
	if C(ctx) == nil || C(context.Background()) != Get() {
		t.Fatalf("C should return the root logger without a request id")
	}
	if Named("") != Get() || Named("keywords") == Get() {
		t.Fatalf("Named child mismatch")
	}
}
