package config

import (
	"testing"
	"time"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestConf_May(t *testing.T) {
	t.Setenv("WG_JUMP", "2")
	t.Setenv("WG_BAD_INT", "two")
	t.Setenv("WG_RECORD", "true")
	t.Setenv("WG_INTERVAL", "250ms")
	t.Setenv("WG_MASK", "#")
	t.Setenv("WG_WIDE_MASK", "##")
	t.Setenv("WG_BROKERS", " a:9092, ,b:9092 ")
	t.Setenv("WG_FORMAT", "TOML")

	c := New().Prefix("WG_")
	if got := c.MayInt("JUMP", 1); got != 2 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BAD_INT", 1); got != 1 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if got := c.MayInt("MISSING", 7); got != 7 {
		t.Fatalf("MayInt missing = %d", got)
	}
	if !c.MayBool("RECORD", false) {
		t.Fatalf("MayBool = false")
	}
	if got := c.MayDuration("INTERVAL", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayRune("MASK", '*'); got != '#' {
		t.Fatalf("MayRune = %q", got)
	}
	if got := c.MayRune("WIDE_MASK", '*'); got != '*' {
		t.Fatalf("MayRune multi = %q", got)
	}
	if got := c.MayCSV("BROKERS", nil); len(got) != 2 || got[0] != "a:9092" || got[1] != "b:9092" {
		t.Fatalf("MayCSV = %q", got)
	}
	if got := c.MayCSV("NONE", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("MayCSV default = %q", got)
	}
	if got := c.MayEnum("FORMAT", "json", "json", "toml", "text"); got != "toml" {
		t.Fatalf("MayEnum = %q", got)
	}
	if got := c.MayString("NONE", "d"); got != "d" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestConf_Must(t *testing.T) {
	t.Setenv("WG_PORT", "4000")
	t.Setenv("WG_BAD_PORT", "70000")
	t.Setenv("WG_URL", "https://example.com/words.txt")
	t.Setenv("WG_REL_URL", "words.txt")
	t.Setenv("WG_ENUM", "yaml")

	c := New().Prefix("WG_")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	if got := c.MustURL("URL"); got.Host != "example.com" {
		t.Fatalf("MustURL = %v", got)
	}

	mustPanic(t, "missing", func() { c.MustString("NOPE") })
	mustPanic(t, "bad port", func() { c.MustPort("BAD_PORT") })
	mustPanic(t, "relative url", func() { c.MustURL("REL_URL") })
	mustPanic(t, "require", func() { c.Require("PORT", "NOPE") })
	mustPanic(t, "enum", func() { c.MayEnum("ENUM", "json", "json", "toml") })
}
