package client

import "errors"

var ErrInvalidInputFile = errors.New("input file is not a JSON array of transactions")
