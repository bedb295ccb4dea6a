package bulksheet

import "errors"

var (
	ErrInvalidMaxCPC = errors.New("keyword max cpc must be a decimal number")
)
