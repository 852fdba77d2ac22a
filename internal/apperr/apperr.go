// Package apperr defines the error taxonomy shared by every handler and
// collaborator. All failures are classified into one of the kinds below so
// that the HTTP layer can map them to status codes in a single place.
package apperr

// Kind classifies a failure.
type Kind int

const (
	// KindValidation is malformed client input.
	KindValidation Kind = iota
	// KindAuth is a missing or mismatched bearer token.
	KindAuth
	// KindNotFound is a target row that does not exist.
	KindNotFound
	// KindStore is any database failure.
	KindStore
	// KindImport is an outbound fetch or response-shape failure.
	KindImport
)

// Error carries a kind, a client-safe message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports malformed client input.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Auth reports a missing or incorrect bearer token.
func Auth() *Error {
	return &Error{Kind: KindAuth, Message: "unauthorized"}
}

// NotFound reports a missing target row.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Store wraps a database failure. The cause is logged server-side and never
// echoed to the client.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Message: "store failure", Err: err}
}

// Import wraps an outbound catalog fetch failure.
func Import(message string, err error) *Error {
	return &Error{Kind: KindImport, Message: message, Err: err}
}
