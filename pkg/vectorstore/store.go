package vectorstore

import "context"

// Metadata is the payload attached to every stored passage.
type Metadata struct {
	Source    string   `json:"source"`
	Section   string   `json:"section,omitempty"`
	Page      string   `json:"page,omitempty"`
	Namespace string   `json:"namespace"`
	Tags      []string `json:"tags,omitempty"`
	ChunkIdx  int      `json:"chunkIndex"`
}

type Payload struct {
	Content  string   `json:"content"`
	Metadata Metadata `json:"metadata"`
}

type Point struct {
	Id      string
	Vector  []float32
	Payload Payload
}

// Condition matches a payload field either exactly (Value) or against a set
// (AnyOf). Keys use dotted payload paths, e.g. "metadata.namespace".
type Condition struct {
	Key   string
	Value string
	AnyOf []string
}

// Filter combines conditions. Should is an OR group, Must an AND group,
// mirroring the Qdrant filter model all backends are normalized to.
type Filter struct {
	Should []Condition
	Must   []Condition
}

type Result struct {
	Id      string
	Score   float64
	Payload Payload
}

// Store is the contract every vector backend implements. Search returns
// results in descending score order, at most topK of them.
type Store interface {
	EnsureCollection(ctx context.Context, name string, dimension int) error
	Upsert(ctx context.Context, collection string, points []Point) error
	Search(ctx context.Context, collection string, vector []float32, filter *Filter, topK int) ([]Result, error)
}
