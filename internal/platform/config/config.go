// Package config reads service settings from the environment. Must* accessors panic through the
// logger on a missing or malformed value; May* accessors fall back to a default and warn
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"wordguard/internal/platform/logger"
)

// Conf is a prefixed view over the environment, e.g. New().Prefix("SCAN_")
type Conf struct{ prefix string }

// New returns the unprefixed root view
func New() Conf { return Conf{} }

// Prefix returns a child view whose keys gain p
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

func (c Conf) must(k string) string {
	v := c.lookup(k)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(k)).Msg("missing required env")
	}
	return v
}

// may parses key with parse, returning def when it is unset or fails to parse
func may[T any](c Conf, key string, def T, kind string, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

// mustParse parses a required key, panicking with hint when the value is malformed
func mustParse[T any](c Conf, key, hint string, parse func(string) (T, error)) T {
	s := c.must(key)
	v, err := parse(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg(hint)
	}
	return v
}

func parseDuration(s string) (time.Duration, error) { return time.ParseDuration(s) }

func parseURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err == nil && !u.IsAbs() {
		err = strconv.ErrSyntax
	}
	return u, err
}

func parsePort(s string) (string, error) {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return "", strconv.ErrRange
	}
	return ":" + s, nil
}

func parseRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, strconv.ErrSyntax
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// MustString returns a required value
func (c Conf) MustString(key string) string { return c.must(key) }

// MustInt returns a required integer
func (c Conf) MustInt(key string) int { return mustParse(c, key, "invalid int value", strconv.Atoi) }

// MustBool returns a required bool
func (c Conf) MustBool(key string) bool {
	return mustParse(c, key, "invalid bool value", strconv.ParseBool)
}

// MustDuration returns a required duration such as 250ms or 2s
func (c Conf) MustDuration(key string) time.Duration {
	return mustParse(c, key, "invalid duration (e.g., 250ms, 2s, 1h)", parseDuration)
}

// MustURL returns a required absolute URL
func (c Conf) MustURL(key string) *url.URL {
	return mustParse(c, key, "invalid absolute URL", parseURL)
}

// MustPort returns a listen address like ":4000" for a port in 1..65535
func (c Conf) MustPort(key string) string {
	return mustParse(c, key, "invalid TCP port; expected 1..65535", parsePort)
}

// Require panics unless every key is set
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		c.must(k)
	}
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def
func (c Conf) MayInt(key string, def int) int { return may(c, key, def, "int", strconv.Atoi) }

// MayBool returns the value or def
func (c Conf) MayBool(key string, def bool) bool {
	return may(c, key, def, "bool", strconv.ParseBool)
}

// MayDuration returns the value or def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, "duration", parseDuration)
}

// MayRune returns a single-rune value, such as a mask character, or def
func (c Conf) MayRune(key string, def rune) rune { return may(c, key, def, "rune", parseRune) }

// MayCSV splits a comma-separated value, dropping blanks; def when nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value when it is one of allowed (case-insensitive), def when unset,
// and panics otherwise
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
