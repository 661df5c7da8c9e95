// Package types contains common types used across the application.
package types

// Entry represents one derived standings row. Rank is always computed at
// read time from the score series, never stored.
type Entry struct {
	Rank    int      `json:"rank"`
	Model   string   `json:"model"`
	Company string   `json:"company"`
	Score   float64  `json:"score"`
	AsOf    string   `json:"as_of"` // date the latest non-null score comes from
}
