package contract

import "errors"

// Repository error taxonomy. Store-level failures are translated into
// these sentinels and wrapped with operation context; callers match
// with errors.Is. Nothing in the repository layer retries.
var (
	// ErrPrecondition marks a caller bug: an update or delete was
	// attempted without a single populated condition field. The store
	// is never touched.
	ErrPrecondition = errors.New("at least one populated field is required")

	// ErrWriteFailed means the store reported zero rows affected on an
	// insert, update or delete.
	ErrWriteFailed = errors.New("write affected no rows")

	// ErrNotFound means no row matched a read or an ownership-scoped
	// delete. Reads treat this as an empty result, deletes as an error.
	ErrNotFound = errors.New("not found")

	// ErrEmbedding means the embedding model failed; fatal to the
	// enclosing insert or search.
	ErrEmbedding = errors.New("embedding generation failed")

	// ErrInvalidSearchType rejects an unknown search type before any
	// query is issued.
	ErrInvalidSearchType = errors.New("invalid search type")
)
