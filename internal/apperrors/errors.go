package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrFundNotFound indicates that a fund with the given ID does not exist.
	ErrFundNotFound = errors.New("fund not found")

	// ErrArticleNotFound indicates that no article matches the requested slug in any locale.
	ErrArticleNotFound = errors.New("article not found")

	// ErrHeroContentNotFound indicates that the CMS holds no hero content for the locale.
	ErrHeroContentNotFound = errors.New("hero content not found")
)

// Calculator input errors. Insufficient history is not an error: it is
// reported through the output status.
var (
	// ErrInvalidDeposit indicates a deposit that is not a finite, strictly positive number.
	ErrInvalidDeposit = errors.New("deposit must be a positive number")

	// ErrInvalidTimeframe indicates a timeframe outside 1Y, 3Y, 5Y, 10Y and Inception.
	ErrInvalidTimeframe = errors.New("invalid timeframe")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrNonPositiveNav indicates a NAV observation that is zero or negative.
	ErrNonPositiveNav = errors.New("nav must be greater than zero")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrUnsupportedFormat indicates a data file whose extension is not json, yaml or yml.
	ErrUnsupportedFormat = errors.New("unsupported data file format")
)

// CMS errors are typed so callers never have to interpret a nil result.
var (
	// ErrCMSNetwork indicates a transport failure, an unexpected status or an undecodable body.
	ErrCMSNetwork = errors.New("cms request failed")

	// ErrCMSNotFound indicates the CMS answered 404 for the requested resource.
	ErrCMSNotFound = errors.New("cms resource not found")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToRetrieveFunds     = errors.New("failed to retrieve funds")
	ErrFailedToRetrieveFund      = errors.New("failed to retrieve fund")
	ErrFailedToRetrieveNavs      = errors.New("failed to retrieve nav series")
	ErrFailedToRetrieveDividends = errors.New("failed to retrieve dividends")
	ErrFailedToComputeReport     = errors.New("failed to compute period report")
	ErrFailedToRetrieveArticles  = errors.New("failed to retrieve articles")
	ErrFailedToRetrieveHero      = errors.New("failed to retrieve hero content")
	ErrFailedToRetrievePromotion = errors.New("failed to retrieve promotion")
	ErrFailedToGetVersionInfo    = errors.New("failed to get version information")
	ErrFailedToRefreshNavs       = errors.New("failed to refresh nav series")
)
