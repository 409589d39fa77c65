package format

import "errors"

// ErrNilStore is returned by New when no configuration Store is given.
var ErrNilStore = errors.New("format: nil store")
