package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Adapters and stores return
// these (optionally wrapped) so services can distinguish factual states
// from programming errors.
//
// - ErrNotFound: the document, person or case does not exist upstream
// - ErrUnavailable: a collaborator is temporarily unreachable; routing
//   treats this as "no answer", never as a fatal error
// - ErrConflict: a record with the same identity already exists
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrConflict    = errors.New("conflict")
)
