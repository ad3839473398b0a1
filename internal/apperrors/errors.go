package apperrors

import "errors"

// Validation errors represent rejected user input. They are returned before
// any store mutation takes place and surface to the caller as a 400.
var (
	// ErrUnsupportedSymbol indicates a ticker outside the supported symbol set.
	ErrUnsupportedSymbol = errors.New("unsupported symbol")

	// ErrNonPositiveQuantity indicates a purchase with quantity <= 0.
	// Accepting it would produce a non-finite derived price.
	ErrNonPositiveQuantity = errors.New("quantity must be positive")

	// ErrNonPositiveSpend indicates a purchase with totalSpent <= 0.
	ErrNonPositiveSpend = errors.New("totalSpent must be positive")

	// ErrMissingOwner indicates a purchase without an owner identifier.
	ErrMissingOwner = errors.New("owner ID is required")
)

// Price source errors.
var (
	// ErrPriceFetchFailed indicates the market-data source was unreachable or
	// returned a non-success response. The previous cache, if any, is left
	// untouched; callers may retry.
	ErrPriceFetchFailed = errors.New("failed to fetch prices from market-data source")
)

// Storage errors.
var (
	// ErrStorageFailure indicates a read or write of the purchase collection
	// failed. The triggering operation is aborted with no partial write.
	ErrStorageFailure = errors.New("storage failure")

	// ErrSettingNotFound indicates a system setting key has no stored value.
	ErrSettingNotFound = errors.New("setting not found")
)

// Internal calculation errors. These guard divisions that should be
// unreachable given write-time validation; they must never surface as
// NaN or Infinity in results.
var (
	// ErrDegenerateQuantity indicates a position aggregated to zero quantity.
	ErrDegenerateQuantity = errors.New("position has zero aggregated quantity")
)
