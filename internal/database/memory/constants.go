package memory

// Error Messages - store operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgUserAlreadyExists        = "user already exists"
	ErrMsgNegativeBalance          = "balance would become negative"
)
