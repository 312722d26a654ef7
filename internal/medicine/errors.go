package medicine

import "github.com/pkg/errors"

var ErrNotFound = errors.New("medicine not found")
