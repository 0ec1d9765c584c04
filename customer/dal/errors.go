package dal

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
)
