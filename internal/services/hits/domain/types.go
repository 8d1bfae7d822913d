// Package domain defines the hit log types and ports
package domain

import "time"

// HitWrite is one accepted match recorded to the hit log
type HitWrite struct {
	ID      string // uuid
	At      time.Time
	Source  string // what produced the hit: api, moderator, cli
	Channel string // caller supplied grouping, may be empty
	Keyword string // canonical keyword
	Start   int
	End     int
	Snippet string // original matched text
}

// KeywordCount is one row of the top keywords aggregate
type KeywordCount struct {
	Keyword string `json:"keyword" example:"bad"`
	Hits    uint64 `json:"hits"    example:"42"`
}
