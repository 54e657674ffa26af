package models

import "errors"

// ErrInvalidTransactionPayload is returned by Transaction.UnmarshalJSON when
// a present cost or time value cannot be parsed.
var ErrInvalidTransactionPayload = errors.New("invalid transaction payload")
