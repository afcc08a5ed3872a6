package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable indicates the document store connection was never
	// established or has been closed. Surfaced as service-unavailable;
	// clients may retry later.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrModelImageMismatch indicates the model image failed consistency
	// validation against the product image.
	ErrModelImageMismatch = errors.New("model image must match product image")
)
