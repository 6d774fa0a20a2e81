package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrNoValidPlatforms = errors.New("no valid platforms specified")
	ErrNoProducts       = errors.New("no products found")
)
