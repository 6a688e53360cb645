package roster

import "strings"

// ClassifierConfig holds the keyword tables used to derive a tier or region
// from an entry's affiliation line. The tables are plain data so they can be
// swapped in tests (or updated for a new recruiting class) without touching
// the matching logic.
type ClassifierConfig struct {
	D1Schools []string
	D3Schools []string
	Europe    []string
	Oceania   []string
}

// DefaultClassifierConfig mirrors the programs and clubs currently on the
// roster sheet. D2 and North America are catch-alls and need no table.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		D1Schools: []string{
			"binghamton", "yale", "princeton", "georgetown", "duke", "harvard",
			"columbia", "cornell", "virginia", "bucknell", "pennsylvania", "colgate",
			"howard", "american", "elon", "high point", "wake forest", "william & mary",
			"radford", "manhattan", "providence", "george mason", "george washington",
			"massachusetts amherst", "wilmington", "university of california, los angeles",
			"illinois at chicago", "ohio state", "akron", "james madison", "old dominion",
			"lynchburg",
		},
		D3Schools: []string{"emory", "haverford", "st. louis"},
		Europe: []string{
			"bournemouth", "wolfsburg", "leverkusen", "westerlo", "leuven",
			"arsenal", "lyonnes", "grazer", "jiskra", "dukla",
		},
		Oceania: []string{"manurewa", "birkenhead"},
	}
}

// Classifier derives tier, region and the collegiate/professional split from
// free-text affiliation lines. All methods are pure functions of the input
// string and the configured tables.
type Classifier struct {
	cfg ClassifierConfig
}

func NewClassifier(cfg ClassifierConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Tier returns the competition tier for a collegiate entry. D1 is checked
// before D3; anything unmatched is D2. A blank line defaults to D1 rather
// than erroring.
func (c *Classifier) Tier(subtitle string) string {
	if subtitle == "" {
		return "D1"
	}
	s := strings.ToLower(subtitle)
	if containsAny(s, c.cfg.D1Schools) {
		return "D1"
	}
	if containsAny(s, c.cfg.D3Schools) {
		return "D3"
	}
	return "D2"
}

// Region returns the geographic region for a professional entry. A blank
// line defaults to North America.
func (c *Classifier) Region(subtitle string) string {
	if subtitle == "" {
		return "North America"
	}
	s := strings.ToLower(subtitle)
	if containsAny(s, c.cfg.Europe) {
		return "Europe"
	}
	if containsAny(s, c.cfg.Oceania) {
		return "Oceania"
	}
	return "North America"
}

// Collegiate reports whether the affiliation line describes a college
// program. This is a plain substring test, independent of the tier/region
// tables, so a club whose name contains "university" will be treated as
// collegiate. Known heuristic limitation; the sheet avoids such names.
func (c *Classifier) Collegiate(subtitle string) bool {
	return strings.Contains(strings.ToLower(subtitle), "university")
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
