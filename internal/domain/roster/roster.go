// Package roster resolves scraped model names to canonical identities.
//
// Resolution is table-driven: noise stripping, an explicit alias map, and an
// exact roster match. There is deliberately no fuzzy-distance matching; two
// genuinely different models must never merge because their names look alike.
// Unknown names become provisional identities so a reading is never dropped.
package roster

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Identity is a resolved model identity.
type Identity struct {
	Name        string
	Company     string
	Provisional bool // true when no alias or roster entry matched
}

// Roster is the central model-name registry. Resolution is safe for
// concurrent use; scoring runs share one instance read-only.
type Roster struct {
	mu          sync.RWMutex
	roster      map[string]string // canonical name -> company
	aliases     map[string]string // lowercase raw -> canonical name
	provisional map[string]string // cleaned name -> raw company, pending review
}

// Option applies a configuration option to the Roster.
type Option func(*Roster)

// WithRoster replaces the built-in canonical roster.
func WithRoster(roster map[string]string) Option {
	return func(r *Roster) {
		if len(roster) > 0 {
			r.roster = roster
		}
	}
}

// WithAliases replaces the built-in alias table.
func WithAliases(aliases map[string]string) Option {
	return func(r *Roster) {
		if len(aliases) > 0 {
			r.aliases = aliases
		}
	}
}

// WithExtraAliases merges additional aliases over the built-in table.
func WithExtraAliases(aliases map[string]string) Option {
	return func(r *Roster) {
		merged := make(map[string]string, len(r.aliases)+len(aliases))
		for k, v := range r.aliases {
			merged[k] = v
		}
		for k, v := range aliases {
			merged[strings.ToLower(k)] = v
		}
		r.aliases = merged
	}
}

// New creates a Roster seeded with the built-in canonical names and aliases.
func New(opts ...Option) *Roster {
	r := &Roster{
		roster:      defaultRoster,
		aliases:     defaultAliases,
		provisional: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// leading emoji and other non-ASCII decoration, e.g. a "new" badge glyph
var noisePrefix = regexp.MustCompile(`^[^\x00-\x7F]+\s*`)

// trailing eval-harness suffixes carried in raw API names
var noiseSuffix = regexp.MustCompile(`(?i)\s*\((zero shot|scratchpad|thinking|high reasoning)\)\s*$`)

// lowercase org slug before a slash, e.g. "anthropic/claude-opus-4-6"
var orgSlug = regexp.MustCompile(`^[a-z0-9\-_]+$`)

// stripNoise removes emoji prefixes, org-path prefixes, and raw-API suffixes.
func stripNoise(name string) string {
	s := noisePrefix.ReplaceAllString(name, "")
	if before, after, ok := strings.Cut(s, "/"); ok && orgSlug.MatchString(before) {
		s = after
	}
	s = noiseSuffix.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// claudeShort expands short Claude model names missing the "Claude " prefix.
var claudeShort = []struct{ short, full string }{
	{"opus ", "Claude Opus "},
	{"sonnet ", "Claude Sonnet "},
	{"haiku ", "Claude Haiku "},
}

// Resolve maps a raw scraped name (and optional raw company) to a canonical
// identity. Resolving an already-canonical name returns it unchanged. When
// nothing matches, the cleaned name becomes a provisional identity which is
// recorded for human review rather than failing the pipeline.
func (r *Roster) Resolve(rawName, rawCompany string) Identity {
	cleaned := stripNoise(rawName)
	if cleaned == "" {
		return Identity{Name: rawName, Company: rawCompany, Provisional: true}
	}
	lower := strings.ToLower(cleaned)

	r.mu.RLock()
	if id, ok := r.lookup(cleaned, lower); ok {
		r.mu.RUnlock()
		return id
	}
	for _, c := range claudeShort {
		if strings.HasPrefix(lower, c.short) && !strings.HasPrefix(lower, "claude") {
			expanded := c.full + cleaned[len(c.short):]
			if id, ok := r.lookup(expanded, strings.ToLower(expanded)); ok {
				r.mu.RUnlock()
				return id
			}
			cleaned = expanded
			break
		}
	}
	r.mu.RUnlock()

	r.mu.Lock()
	r.provisional[cleaned] = rawCompany
	r.mu.Unlock()

	company := rawCompany
	if company == "" {
		company = "Unknown"
	}
	return Identity{Name: cleaned, Company: company, Provisional: true}
}

// lookup checks aliases then the roster. Callers hold at least a read lock.
func (r *Roster) lookup(cleaned, lower string) (Identity, bool) {
	if canon, ok := r.aliases[lower]; ok {
		return Identity{Name: canon, Company: r.roster[canon]}, true
	}
	if company, ok := r.roster[cleaned]; ok {
		return Identity{Name: cleaned, Company: company}, true
	}
	for canon, company := range r.roster {
		if strings.ToLower(canon) == lower {
			return Identity{Name: canon, Company: company}, true
		}
	}
	return Identity{}, false
}

// Known reports whether name resolves without creating a provisional entry.
func (r *Roster) Known(name string) bool {
	cleaned := stripNoise(name)
	lower := strings.ToLower(cleaned)
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.lookup(cleaned, lower)
	return ok
}

// Provisional returns the names resolved without a match since construction,
// sorted, for review and promotion into the alias table.
func (r *Roster) Provisional() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.provisional))
	for name := range r.provisional {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
