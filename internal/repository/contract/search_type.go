package contract

// SearchType selects the ranking algorithm for a note search.
type SearchType int

const (
	// SearchTypeUnspecified is the wire default and resolves to the
	// context (semantic) strategy.
	SearchTypeUnspecified SearchType = iota
	SearchTypeNoSearch
	SearchTypeFullTextTitle
	SearchTypeFuzzy
	SearchTypeContext
)

func (t SearchType) String() string {
	switch t {
	case SearchTypeUnspecified:
		return "unspecified"
	case SearchTypeNoSearch:
		return "no_search"
	case SearchTypeFullTextTitle:
		return "full_text_title"
	case SearchTypeFuzzy:
		return "fuzzy"
	case SearchTypeContext:
		return "context"
	default:
		return "unknown"
	}
}
