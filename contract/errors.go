package contract

import "errors"

// Error taxonomy. Every public operation either fully commits or returns
// one of these (possibly wrapped with call context); there is no partial
// success and nothing is swallowed.
var (
	// Authorization
	ErrNotAdministrator   = errors.New("caller is not the administrator")
	ErrNotOwner           = errors.New("caller is not the token owner")
	ErrNotApprovedOrOwner = errors.New("caller is not owner nor approved")

	// Validation
	ErrEmptyValue        = errors.New("value must not be empty")
	ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")
	ErrInvalidCap        = errors.New("cap below current invocation count")
	ErrZeroAddress       = errors.New("zero address not allowed")

	// Capacity
	ErrCapacityExceeded = errors.New("maximum invocations reached")

	// NotFound
	ErrUnknownToken = errors.New("token does not exist")

	// Mint / payout
	ErrMintFailed   = errors.New("mint failed")
	ErrPayoutFailed = errors.New("payout failed")
)
