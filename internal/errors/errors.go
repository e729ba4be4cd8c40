package errors

import "fmt"

// NotFound signals that a requested doc does not exist. Repositories map the
// underlying firestore NotFound code to this sentinel.
var NotFound = fmt.Errorf("not found")

// InvalidArgument rejects malformed input before any collaborator call.
var InvalidArgument = fmt.Errorf("invalid argument")

// Pipeline failure categories. Each collaborator failure is caught at its call
// site and surfaced as exactly one of these, wrapped with call context.
var (
	// MetadataFetch covers failures to resolve product name/manufacturer/price.
	MetadataFetch = fmt.Errorf("product metadata fetch failed")

	// Nlp covers classifier and extractor failures. These are fatal to the
	// request; no partial sentiment result is ever returned.
	Nlp = fmt.Errorf("nlp analysis failed")

	// Persistence covers snapshot/audit write failures.
	Persistence = fmt.Errorf("snapshot persistence failed")
)
