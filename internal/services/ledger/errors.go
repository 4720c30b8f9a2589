package ledger

import "errors"

// Application-level rejections from the ledger, distinguished from transport
// failures so handlers can map them to meaningful responses. The ledger has
// already recorded its side of the operation (a flagged transfer, for one,
// still produces a transaction record upstream).
var (
	ErrInsufficientFunds = errors.New("ledger: insufficient balance")
	ErrReceiverNotFound  = errors.New("ledger: receiver not found")
	ErrTransferFlagged   = errors.New("ledger: transfer flagged")
	ErrInvalidAmount     = errors.New("ledger: amount must be greater than 0")
)
