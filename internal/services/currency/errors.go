package currency

import "errors"

var (
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)
