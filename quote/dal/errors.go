package dal

import "errors"

var ErrQuoteNotFound = errors.New("quote not found")
