// ABOUTME: Normalizer expands Indian legal abbreviations and standardizes references
// ABOUTME: Extracts case and statute citations from legal text
package chunker

import (
	"fmt"
	"regexp"
)

// Abbreviation maps a short form to its expansion. Kept as an ordered
// slice so expansion is deterministic.
type Abbreviation struct {
	Short string
	Full  string
}

// DefaultAbbreviations returns the standard Indian legal abbreviation table.
func DefaultAbbreviations() []Abbreviation {
	return []Abbreviation{
		{"CrPC", "Code of Criminal Procedure"},
		{"CPC", "Code of Civil Procedure"},
		{"IPC", "Indian Penal Code"},
		{"BNS", "Bharatiya Nyaya Sanhita"},
		{"BSA", "Bharatiya Sakshya Adhiniyam"},
		{"BNSS", "Bharatiya Nagarik Suraksha Sanhita"},
		{"SC", "Supreme Court"},
		{"HC", "High Court"},
		{"AIR", "All India Reporter"},
		{"SCC", "Supreme Court Cases"},
	}
}

var (
	sectionRefRe  = regexp.MustCompile(`Sec\.?\s*(\d+)`)
	articleRefRe  = regexp.MustCompile(`Art\.?\s*(\d+)`)
	reporterRefRe = regexp.MustCompile(`\b(\d{4})\s*\(\s*(\d+)\s*\)\s*(SCC|AIR|SCR)`)

	caseCitationRe = regexp.MustCompile(
		`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+v\.?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+(\d{4})\s*\(\s*(\d+)\s*\)\s*(SCC|AIR|SCR)\s*(\d+)`)
	statuteCitationRe = regexp.MustCompile(
		`(Section|Article)\s+(\d+(?:\([a-z]\))?)\s+of\s+(?:the\s+)?([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`)
)

// Normalizer standardizes legal text before chunking.
type Normalizer struct {
	expansions []Abbreviation
	patterns   []*regexp.Regexp
}

// NewNormalizer builds a Normalizer over the given abbreviation table.
// A nil table uses DefaultAbbreviations.
func NewNormalizer(abbrevs []Abbreviation) *Normalizer {
	if abbrevs == nil {
		abbrevs = DefaultAbbreviations()
	}
	patterns := make([]*regexp.Regexp, len(abbrevs))
	for i, a := range abbrevs {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(a.Short) + `\b`)
	}
	return &Normalizer{expansions: abbrevs, patterns: patterns}
}

// Normalize expands abbreviations (word-bounded, case-insensitive) and
// standardizes section, article, and reporter references.
func (n *Normalizer) Normalize(text string) string {
	for i, a := range n.expansions {
		text = n.patterns[i].ReplaceAllString(text, a.Full)
	}
	text = sectionRefRe.ReplaceAllString(text, "Section $1")
	text = articleRefRe.ReplaceAllString(text, "Article $1")
	text = reporterRefRe.ReplaceAllString(text, "$1 ($2) $3")
	return text
}

// CitationType distinguishes case law from statutory references.
type CitationType string

const (
	CitationCase    CitationType = "case"
	CitationStatute CitationType = "statute"
)

// Citation is one legal citation found in a text.
type Citation struct {
	Type CitationType
	Text string // full matched citation

	// Case citations
	Petitioner string
	Respondent string
	Year       string
	Volume     string
	Reporter   string
	Page       string

	// Statutory references
	Provision string // "Section" or "Article"
	Number    string
	Act       string
}

// String renders the citation in its canonical short form.
func (c Citation) String() string {
	if c.Type == CitationCase {
		return fmt.Sprintf("%s v. %s %s (%s) %s %s",
			c.Petitioner, c.Respondent, c.Year, c.Volume, c.Reporter, c.Page)
	}
	return fmt.Sprintf("%s %s of the %s", c.Provision, c.Number, c.Act)
}

// ExtractCitations finds case citations (X v. Y 2019 (4) SCC 123) and
// statutory references (Section 302 of the Indian Penal Code).
func ExtractCitations(text string) []Citation {
	var citations []Citation

	for _, m := range caseCitationRe.FindAllStringSubmatch(text, -1) {
		citations = append(citations, Citation{
			Type:       CitationCase,
			Text:       m[0],
			Petitioner: m[1],
			Respondent: m[2],
			Year:       m[3],
			Volume:     m[4],
			Reporter:   m[5],
			Page:       m[6],
		})
	}

	for _, m := range statuteCitationRe.FindAllStringSubmatch(text, -1) {
		citations = append(citations, Citation{
			Type:      CitationStatute,
			Text:      m[0],
			Provision: m[1],
			Number:    m[2],
			Act:       m[3],
		})
	}

	return citations
}
