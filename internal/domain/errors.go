package domain

import "errors"

var (
	// Not-found errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Validation errors
	ErrInvalidAccountType    = errors.New("invalid account type")
	ErrInvalidAccountCode    = errors.New("invalid account code")
	ErrInvalidAccountName    = errors.New("invalid account name")
	ErrInvalidReference      = errors.New("invalid transaction reference")
	ErrInvalidDescription    = errors.New("invalid transaction description")
	ErrMissingAccountID      = errors.New("entry must reference an account")
	ErrNegativeAmount        = errors.New("entry amounts must not be negative")
	ErrEmptyTransaction      = errors.New("transaction must have at least one entry")
	ErrUnbalancedTransaction = errors.New("total debits must equal total credits")
	ErrAccountHasEntries     = errors.New("account has ledger entries")
	ErrEmptyPatch            = errors.New("update must change at least one field")
)

// IsValidation reports whether err belongs to the validation family, i.e.
// the caller can fix the input and retry.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidAccountType,
		ErrInvalidAccountCode,
		ErrInvalidAccountName,
		ErrInvalidReference,
		ErrInvalidDescription,
		ErrMissingAccountID,
		ErrNegativeAmount,
		ErrEmptyTransaction,
		ErrUnbalancedTransaction,
		ErrAccountHasEntries,
		ErrEmptyPatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// IsNotFound reports whether err means a referenced resource does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrTransactionNotFound)
}
