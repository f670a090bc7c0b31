package user

// Error format strings
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetUserFailed           = "failed to get user: %w"
	ErrMsgCreateUserFailed        = "failed to create user: %w"
	ErrMsgGrantStarterItemFailed  = "failed to grant starter item: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgUpdateProfileFailed     = "failed to update profile: %w"
	ErrMsgAdjustBalanceFailed     = "failed to adjust balance: %w"
	ErrMsgGrantAmountFmt          = "grant amount %d outside 1..%d: %w"
)

// Log messages
const (
	LogMsgUserCreated      = "User created"
	LogMsgProfileUpdated   = "Profile updated"
	LogMsgSignalsGranted   = "Signals granted"
	LogMsgGetUserCalled    = "GetUser called"
	LogMsgGetInventoryCall = "GetInventory called"
)

// Profile limits
const (
	MaxFirstNameLength = 64
	MaxUsernameLength  = 32
	MaxPhotoURLLength  = 512
)
