package dialog

import "context"

// Retriever ranks candidate strategy ids for a free-text query using semantic
// similarity. The engine treats it as a refinement: a nil Retriever or a
// failed call leaves the rule-based ordering in place.
type Retriever interface {
	Rank(ctx context.Context, query string, candidateIDs []string) ([]string, error)
}
