package yahoo

import "errors"

var errNoPrice = errors.New("missing regular market price")
