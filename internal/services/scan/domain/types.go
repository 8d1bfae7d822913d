// Package domain defines scan requests, results and the scan port
package domain

import "wordguard/internal/core/detector"

// Batch modes
const (
	ModeContains = "contains"
	ModeFirst    = "first"
	ModeAll      = "all"
	ModeReplace  = "replace"
)

// ScanInput is one text to scan. Channel tags recorded hits
type ScanInput struct {
	Text    string `json:"text"              example:"you are b.a.d"`
	Channel string `json:"channel,omitempty" validate:"max=64" example:"chat:lobby"`
}

// ReplaceInput is a text to mask. An empty Mask uses the configured mask rune
type ReplaceInput struct {
	Text    string `json:"text"              example:"you are b.a.d"`
	Mask    string `json:"mask,omitempty"    validate:"omitempty,single_rune" example:"*"`
	Channel string `json:"channel,omitempty" validate:"max=64" example:"chat:lobby"`
}

// BatchInput scans many texts in one mode
type BatchInput struct {
	Texts   []string `json:"texts"             validate:"required,min=1,max=1000"`
	Mode    string   `json:"mode,omitempty"    validate:"omitempty,oneof=contains first all replace" example:"all"`
	Mask    string   `json:"mask,omitempty"    validate:"omitempty,single_rune" example:"#"`
	Channel string   `json:"channel,omitempty" validate:"max=64"`
}

// CheckResult answers containsAny
type CheckResult struct {
	Flagged bool `json:"flagged" example:"true"`
}

// FirstResult carries the first match in scan order, if any
type FirstResult struct {
	Found bool            `json:"found" example:"true"`
	Match *detector.Match `json:"match,omitempty"`
}

// AllResult carries every accepted match in discovery order
type AllResult struct {
	Count   int              `json:"count"   example:"1"`
	Matches []detector.Match `json:"matches"`
}

// ReplaceResult is the masked text. Count is the number of accepted matches
type ReplaceResult struct {
	Text  string `json:"text"  example:"you are *****"`
	Count int    `json:"count" example:"1"`
}

// ModerateResult is a verdict on one text: every match plus the masked text, both taken
// from the same keyword set
type ModerateResult struct {
	Flagged bool             `json:"flagged"`
	Masked  string           `json:"masked"`
	Matches []detector.Match `json:"matches"`
}

// BatchItem is the result for Texts[Index]. Which fields are set depends on the mode
type BatchItem struct {
	Index   int              `json:"index"`
	Flagged bool             `json:"flagged"`
	Matches []detector.Match `json:"matches,omitempty"`
	Text    string           `json:"text,omitempty"`
}

// BatchResult keeps input order
type BatchResult struct {
	Mode    string      `json:"mode"    example:"all"`
	Flagged int         `json:"flagged" example:"2"`
	Items   []BatchItem `json:"items"`
}
