package lootbox

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgChargeFailedFmt         = "cannot open case %d for %d signals: %w"
	ErrMsgGrantPrizeFailed        = "failed to grant prize: %w"
	ErrMsgEmptyPool               = "case pool is empty"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgOpenCaseCalled = "OpenCase called"
	LogMsgCaseOpened     = "Case opened"
	LogMsgFallbackPick   = "Roll matched no entry, falling back to last pool entry"
)

// Log field keys for structured logging
const (
	LogFieldCase   = "case_id"
	LogFieldUser   = "user_id"
	LogFieldItem   = "item"
	LogFieldRarity = "rarity"
)

// OddsPrecision is the number of decimals kept in disclosed drop percentages
const OddsPrecision = 2
