package purchase

import "errors"

var (
	// ErrPurchaseNotFound is returned when a purchase record does not exist
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrAlreadyOwned is returned when the user already holds a completed
	// purchase for the paper
	ErrAlreadyOwned = errors.New("paper already purchased")

	// ErrDuplicatePurchase is returned by the ledger when a concurrent
	// duplicate insert is detected by the uniqueness constraint
	ErrDuplicatePurchase = errors.New("duplicate completed purchase")

	// ErrTerminalState is returned when mutating a completed or failed record
	ErrTerminalState = errors.New("purchase is in a terminal state")
)
