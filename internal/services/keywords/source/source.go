// Package source loads the raw keyword set from the configured origin: the embedded pack,
// a pack file, the Postgres catalog or a remote URL
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"wordguard/internal/core/wordpack"
	perr "wordguard/internal/platform/errors"
	"wordguard/internal/services/keywords/domain"
)

// Kinds accepted by New
const (
	KindEmbedded = "embedded"
	KindFile     = "file"
	KindPG       = "pg"
	KindURL      = "url"
)

// MaxRemoteBytes caps a remote keyword document
const MaxRemoteBytes = 8 << 20

// Embedded serves the pack compiled into the binary
type Embedded struct{}

// Name implements domain.SourcePort
func (Embedded) Name() string { return KindEmbedded }

// Load implements domain.SourcePort
func (Embedded) Load(context.Context) ([]string, error) {
	p, err := wordpack.Load()
	if err != nil {
		return nil, err
	}
	return p.Terms(), nil
}

// File reads a JSON, TOML or text pack from disk on every load
type File struct{ Path string }

// Name implements domain.SourcePort
func (f File) Name() string { return KindFile + ":" + f.Path }

// Load implements domain.SourcePort
func (f File) Load(context.Context) ([]string, error) {
	p, err := wordpack.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	return p.Terms(), nil
}

// WordLister is the slice of the keyword repository a PG source needs
type WordLister interface {
	Words(ctx context.Context) ([]string, error)
}

// PG reads the Postgres keyword catalog
type PG struct{ Repo WordLister }

// Name implements domain.SourcePort
func (PG) Name() string { return KindPG }

// Load implements domain.SourcePort
func (s PG) Load(ctx context.Context) ([]string, error) {
	if s.Repo == nil {
		return nil, perr.Unavailablef("keywords: postgres is not configured")
	}
	return s.Repo.Words(ctx)
}

// URL fetches a pack over HTTP. JSON bodies may be a pack or a plain array of strings;
// TOML is picked by content type or extension; anything else is one keyword per line
type URL struct {
	URL    string
	Client *http.Client
}

// Name implements domain.SourcePort
func (u URL) Name() string { return KindURL + ":" + u.URL }

// Load implements domain.SourcePort
func (u URL) Load(ctx context.Context) ([]string, error) {
	c := u.Client
	if c == nil {
		c = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.URL, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "keywords: bad source url")
	}
	req.Header.Set("Accept", "application/json, application/toml;q=0.9, text/plain;q=0.8")

	resp, err := c.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "keywords: fetch %s", u.URL)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, perr.Unavailablef("keywords: fetch %s: status %d", u.URL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxRemoteBytes+1))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "keywords: read %s", u.URL)
	}
	if len(body) > MaxRemoteBytes {
		return nil, perr.TooLargef("keywords: %s exceeds %d bytes", u.URL, MaxRemoteBytes)
	}
	return decode(body, formatOf(resp.Header.Get("Content-Type"), u.URL))
}

func formatOf(contentType, rawURL string) wordpack.Format {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "json"):
		return wordpack.FormatJSON
	case strings.Contains(ct, "toml"):
		return wordpack.FormatTOML
	}
	if pu, err := url.Parse(rawURL); err == nil {
		return wordpack.FormatOf(path.Base(pu.Path))
	}
	return wordpack.FormatText
}

func decode(body []byte, f wordpack.Format) ([]string, error) {
	if f == wordpack.FormatJSON && bytes.HasPrefix(bytes.TrimSpace(body), []byte("[")) {
		var list []string
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "keywords: decode json list")
		}
		p := wordpack.Pack{Version: wordpack.Version, Keywords: list}
		return p.Terms(), nil
	}
	p, err := wordpack.Parse(body, f)
	if err != nil {
		return nil, err
	}
	return p.Terms(), nil
}

// Config selects and parameterizes a source
type Config struct {
	Kind    string
	File    string
	URL     string
	Timeout time.Duration
}

// New builds the source cfg names. repo backs the pg kind and may be nil otherwise
func New(cfg Config, repo WordLister) (domain.SourcePort, error) {
	switch strings.ToLower(cfg.Kind) {
	case "", KindEmbedded:
		return Embedded{}, nil
	case KindFile:
		if cfg.File == "" {
			return nil, perr.WithField(perr.InvalidArgf("keywords: file source needs a path"), "CORE_KEYWORDS_FILE")
		}
		return File{Path: cfg.File}, nil
	case KindPG:
		if repo == nil {
			return nil, perr.Unavailablef("keywords: pg source needs postgres")
		}
		return PG{Repo: repo}, nil
	case KindURL:
		if cfg.URL == "" {
			return nil, perr.WithField(perr.InvalidArgf("keywords: url source needs a url"), "CORE_KEYWORDS_URL")
		}
		t := cfg.Timeout
		if t <= 0 {
			t = 10 * time.Second
		}
		return URL{URL: cfg.URL, Client: &http.Client{Timeout: t}}, nil
	}
	return nil, perr.WithField(perr.InvalidArgf("keywords: unknown source %q", cfg.Kind), "CORE_KEYWORDS_SOURCE")
}
