package httpkit

import (
	"crypto/subtle"
	"net/http"
	"strings"

	perr "wordguard/internal/platform/errors"
)

// TokenFunc maps a bearer token to the subject it authenticates
type TokenFunc func(token string) (subject string, err error)

// Port reads "Authorization: Bearer <token>" and hands the token to a TokenFunc
type Port struct{ parse TokenFunc }

// NewPortFunc returns a Port over fn
func NewPortFunc(fn TokenFunc) *Port { return &Port{parse: fn} }

// StaticTokens accepts any of tokens and reports subject for all of them. No tokens accepts nothing
func StaticTokens(subject string, tokens ...string) *Port {
	return NewPortFunc(func(tok string) (string, error) {
		for _, want := range tokens {
			if want != "" && subtle.ConstantTimeCompare([]byte(tok), []byte(want)) == 1 {
				return subject, nil
			}
		}
		return "", perr.Unauthorizedf("invalid bearer token")
	})
}

// Parse implements middleware.AuthPort
func (p *Port) Parse(r *http.Request) (string, error) {
	tok, err := Bearer(r)
	if err != nil {
		return "", err
	}
	if p.parse == nil {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	sub, err := p.parse(tok)
	if err != nil {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	return sub, nil
}

// Bearer returns the token from the Authorization header; the scheme is case-insensitive
func Bearer(r *http.Request) (string, error) {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(tok) == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	return strings.TrimSpace(tok), nil
}
