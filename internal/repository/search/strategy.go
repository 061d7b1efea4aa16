// Package search implements the interchangeable note-ranking
// strategies. Every strategy shares one contract: return a page of the
// requesting user's notes, ordered by its own notion of relevance.
package search

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/pkg/embedding"
)

// Params are common to all strategies.
type Params struct {
	Query  string
	Limit  int
	Offset int
	UserId int64
}

// Strategy ranks notes. Implementations are state-free between calls
// and safe for concurrent use.
type Strategy interface {
	Search(ctx context.Context) ([]entity.Note, error)
}

// New selects the strategy for the given search type. An unknown type
// fails with contract.ErrInvalidSearchType before any query is issued;
// the unspecified wire default resolves to the context strategy.
func New(searchType contract.SearchType, db *gorm.DB, params Params, generator *embedding.Generator) (Strategy, error) {
	switch searchType {
	case contract.SearchTypeNoSearch:
		return &DateStrategy{db: db, params: params}, nil
	case contract.SearchTypeFullTextTitle:
		return &WebStrategy{db: db, params: params}, nil
	case contract.SearchTypeFuzzy:
		return &FuzzyStrategy{db: db, params: params}, nil
	case contract.SearchTypeContext, contract.SearchTypeUnspecified:
		return &ContextStrategy{db: db, params: params, generator: generator}, nil
	default:
		return nil, fmt.Errorf("%w: %d", contract.ErrInvalidSearchType, int(searchType))
	}
}
