package ads

import "errors"

var (
	ErrInvalidCustomerID = errors.New("customer id must be a ten digit number")
)
