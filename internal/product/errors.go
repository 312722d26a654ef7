package product

import "github.com/pkg/errors"

var ErrNotFound = errors.New("product not found")
