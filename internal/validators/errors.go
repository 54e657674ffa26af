package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownRule     = errors.New("unknown rule for validation")

	// Sentinels wrapped by ValidationError, one per reward rule.
	ErrEmptyList    = errors.New("transaction list is empty")
	ErrMissingField = errors.New("transaction cost or time is missing")
	ErrNegativeCost = errors.New("transaction cost is negative")
	ErrTooOld       = errors.New("transaction is too old")
)

// ValidationError reports the first reward rule a request violated.
//
// Message is the fixed, client-facing text of the rule and Status the HTTP
// status the transport should answer with. CorrelationID is generated when
// the violation is detected and is written to the log together with the
// failing rule, so a support request quoting it can be traced.
type ValidationError struct {
	Rule          RuleName
	Message       string
	Status        int
	CorrelationID string

	// Index is the position of the offending transaction in the submitted
	// list, or -1 when the rule applies to the list as a whole.
	Index int

	err error
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap exposes the rule sentinel, so errors.Is(err, ErrTooOld) works on a
// wrapped ValidationError.
func (e *ValidationError) Unwrap() error {
	return e.err
}
