package entity

// CitationOrigin records which corpus a passage came from. Provenance
// decisions (retry splits, prompt assembly) rely on this tag, never on the
// shape of the citation id.
type CitationOrigin string

const (
	OriginPrimary   CitationOrigin = "primary"   // Wittgenstein writings
	OriginSecondary CitationOrigin = "secondary" // Transaction Theory corpus
)

type Citation struct {
	Id      string         `json:"id"`
	Text    string         `json:"text"`
	Source  string         `json:"source"`
	Section string         `json:"section,omitempty"`
	Page    string         `json:"page,omitempty"`
	Score   float64        `json:"score"`
	Origin  CitationOrigin `json:"origin"`
}

type RelevantQuote struct {
	Text           string `json:"text"`
	Explanation    string `json:"explanation"`
	IsWittgenstein bool   `json:"isWittgenstein,omitempty"`
}
