package core

import "github.com/go-faster/errors"

var ErrEntityNotFound = errors.New("entity not found")
