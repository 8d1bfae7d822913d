// Package domain defines the keyword catalog types and ports
package domain

import "time"

// Keyword is one stored banned keyword
type Keyword struct {
	ID        int64     `json:"id"         example:"7"`
	Word      string    `json:"word"       example:"bad"`
	Group     string    `json:"group"      example:"insults"`
	CreatedAt time.Time `json:"created_at" example:"2026-01-02T03:04:05Z"`
}

// AddInput is the body of an add request
type AddInput struct {
	Word  string `json:"word"  validate:"required,keyword,max=128" example:"bad"`
	Group string `json:"group" validate:"omitempty,max=64"         example:"insults"`
}

// RemoveInput is the body of a remove request
type RemoveInput struct {
	Word string `json:"word" validate:"required,keyword,max=128" example:"bad"`
}

// ReloadResult describes a published keyword set
type ReloadResult struct {
	Source     string `json:"source"      example:"embedded"`
	Keywords   int    `json:"keywords"    example:"120"`
	States     int    `json:"states"      example:"640"`
	JumpLength int    `json:"jump_length" example:"1"`
	DurationMS int64  `json:"duration_ms" example:"3"`
}
