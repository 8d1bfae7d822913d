// Package wordpack loads keyword packs. A pack is a versioned list of banned keywords,
// optionally grouped, with scan defaults. The default pack is embedded; others are read
// from JSON, TOML or plain text files
package wordpack

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"wordguard/internal/core/normalize"
	perr "wordguard/internal/platform/errors"
)

// Version is the only pack layout this package understands
const Version = 1

//go:embed keywords.json
var embedded []byte

// Format selects a pack decoder
type Format int

const (
	// FormatJSON is the layout written by wordguard-packer
	FormatJSON Format = iota
	// FormatTOML mirrors the JSON layout with [[group]] tables
	FormatTOML
	// FormatText is one keyword per line; blank lines and lines starting with # are skipped
	FormatText
)

// String implements fmt.Stringer
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatText:
		return "text"
	}
	return "json"
}

// FormatOf picks a format from a file extension; unknown extensions are read as text
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	}
	return FormatText
}

// Group is a named keyword list
type Group struct {
	Name     string   `json:"name" toml:"name"`
	Keywords []string `json:"keywords" toml:"keywords"`
}

// Pack is a decoded keyword pack
type Pack struct {
	Version    int      `json:"version" toml:"version"`
	JumpLength *int     `json:"jump_length,omitempty" toml:"jump_length"`
	Mask       string   `json:"mask,omitempty" toml:"mask"`
	Keywords   []string `json:"keywords,omitempty" toml:"keywords"`
	Groups     []Group  `json:"groups,omitempty" toml:"group"`
}

// Load returns the embedded default pack
func Load() (*Pack, error) {
	p, err := Parse(embedded, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("wordpack: embedded keywords.json: %w", err)
	}
	return p, nil
}

// ReadFile reads and decodes the pack at path, choosing the format by extension
func ReadFile(path string) (*Pack, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "wordpack: read %s", path)
	}
	p, err := Parse(b, FormatOf(path))
	if err != nil {
		return nil, perr.WithOp(err, "wordpack.ReadFile "+path)
	}
	return p, nil
}

// Parse decodes data in the given format and validates the result.
// Unknown fields are rejected for JSON and TOML
func Parse(data []byte, f Format) (*Pack, error) {
	var p Pack
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "wordpack: decode json")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "wordpack: decode toml")
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return nil, perr.InvalidArgf("wordpack: unknown toml key %q", extra[0].String())
		}
	case FormatText:
		p = Pack{Version: Version, Keywords: parseLines(data)}
	default:
		return nil, perr.InvalidArgf("wordpack: unknown format %d", int(f))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func parseLines(data []byte) []string {
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Validate checks the version and scan defaults
func (p *Pack) Validate() error {
	if p.Version != Version {
		return perr.WithField(perr.InvalidArgf("wordpack: unsupported version %d (want %d)", p.Version, Version), "version")
	}
	if p.JumpLength != nil && *p.JumpLength < 0 {
		return perr.WithField(perr.InvalidArgf("wordpack: jump_length must be non-negative, got %d", *p.JumpLength), "jump_length")
	}
	if p.Mask != "" && len([]rune(p.Mask)) != 1 {
		return perr.WithField(perr.InvalidArgf("wordpack: mask must be a single rune, got %q", p.Mask), "mask")
	}
	for _, g := range p.Groups {
		if strings.TrimSpace(g.Name) == "" {
			return perr.WithField(perr.InvalidArgf("wordpack: group without a name"), "group")
		}
	}
	return nil
}

// Terms returns the sanitized, trimmed keywords of the pack and all its groups.
// Order is kept and exact duplicates collapse to the first occurrence
func (p *Pack) Terms() []string {
	seen := make(map[string]struct{}, len(p.Keywords))
	out := make([]string, 0, len(p.Keywords))
	add := func(list []string) {
		for _, kw := range list {
			kw = strings.TrimSpace(normalize.Sanitize(kw))
			if kw == "" {
				continue
			}
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}
	add(p.Keywords)
	for _, g := range p.Groups {
		add(g.Keywords)
	}
	return out
}

// Group returns the named group
func (p *Pack) Group(name string) (Group, bool) {
	for _, g := range p.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// Jump returns the pack's jump length or def when the pack leaves it unset
func (p *Pack) Jump(def int) int {
	if p.JumpLength == nil {
		return def
	}
	return *p.JumpLength
}

// MaskRune returns the pack's mask rune or def when unset
func (p *Pack) MaskRune(def rune) rune {
	if p.Mask == "" {
		return def
	}
	return []rune(p.Mask)[0]
}

// Merge appends src's keywords and groups into p. Groups with the same name are concatenated;
// src's scan defaults win when set
func (p *Pack) Merge(src *Pack) {
	if src == nil {
		return
	}
	p.Keywords = append(p.Keywords, src.Keywords...)
	for _, g := range src.Groups {
		merged := false
		for i := range p.Groups {
			if p.Groups[i].Name == g.Name {
				p.Groups[i].Keywords = append(p.Groups[i].Keywords, g.Keywords...)
				merged = true
				break
			}
		}
		if !merged {
			p.Groups = append(p.Groups, Group{Name: g.Name, Keywords: append([]string(nil), g.Keywords...)})
		}
	}
	if src.JumpLength != nil {
		j := *src.JumpLength
		p.JumpLength = &j
	}
	if src.Mask != "" {
		p.Mask = src.Mask
	}
}

// Encode renders p in the indented JSON layout that Load and Parse read back
func (p *Pack) Encode() ([]byte, error) {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "wordpack: encode")
	}
	return append(b, '\n'), nil
}
