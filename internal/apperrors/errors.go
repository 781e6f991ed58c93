package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrCurrencyInactive indicates that the requested source currency exists but is disabled.
var ErrCurrencyInactive = errors.New("currency is inactive")

// ErrPivotCurrencyMissing indicates that no active pivot currency record exists,
// so pivot-hop conversions cannot be composed.
var ErrPivotCurrencyMissing = errors.New("pivot currency not found")

// ErrConversionUnavailable indicates that neither a direct rate nor a full
// pivot path exists for a currency pair. Recoverable: the owning rule is
// excluded while its siblings keep evaluating.
var ErrConversionUnavailable = errors.New("conversion unavailable")

// ErrOutOfRange indicates that a converted amount falls outside a rule's
// admissible transfer range. Recoverable, same as ErrConversionUnavailable.
var ErrOutOfRange = errors.New("amount out of transfer range")

// ErrNoRulesFound indicates that a corridor has no active transfer rules at all.
var ErrNoRulesFound = errors.New("no transfer rules found")

// ErrNoValidOffers indicates that the corridor has rules but every one of them
// was rejected during evaluation. Distinct from ErrNoRulesFound.
var ErrNoValidOffers = errors.New("no valid offers found")
