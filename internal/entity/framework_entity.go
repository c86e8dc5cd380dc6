package entity

// JobStatus is the single authoritative lifecycle state of a framework job.
type JobStatus string

const (
	JobLoading  JobStatus = "loading"
	JobComplete JobStatus = "complete"
	JobError    JobStatus = "error"
)

type Author struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	NotableWorks []string `json:"notable_works"`
}

type Publication struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// FrameworkInfo is the static half of a framework: identity and scholarship
// metadata. It never changes during a run.
type FrameworkInfo struct {
	Id              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	LongDescription string        `json:"longDescription,omitempty"`
	KeyAuthors      []Author      `json:"keyAuthors,omitempty"`
	KeyPublications []Publication `json:"keyPublications,omitempty"`
}

// StructuredInterpretation is the parsed generation output. When the model
// returns malformed JSON the raw text lands in MainInterpretation and the
// arrays carry placeholders, never an error.
type StructuredInterpretation struct {
	MainInterpretation string          `json:"mainInterpretation"`
	KeyInsights        []string        `json:"keyInsights"`
	RelevantQuotes     []RelevantQuote `json:"relevantQuotes"`
}

// FrameworkResult is the mutable half, owned by the orchestrator and replaced
// whole on every transition.
type FrameworkResult struct {
	Id                string                    `json:"id"`
	Name              string                    `json:"name"`
	Status            JobStatus                 `json:"status"`
	Interpretation    string                    `json:"interpretation"`
	Structured        *StructuredInterpretation `json:"structuredInterpretation,omitempty"`
	ReferencePassages []Citation                `json:"referencePassages,omitempty"`
	Error             string                    `json:"error,omitempty"`
}
