package market

// ==================== Error Messages ====================

// Formatted error messages
const (
	ErrMsgInvalidPriceFmt      = "invalid price %d: %w"
	ErrMsgPriceExceedsMaxFmt   = "price %d exceeds maximum allowed (%d): %w"
	ErrMsgItemNotInInventory   = "item %s not in inventory: %w"
	ErrMsgListingNotFoundFmt   = "listing %d: %w"
	ErrMsgBuyerChargeFailedFmt = "cannot buy listing %d for %d signals: %w"
)

// Database operation error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgCreateListingFailed     = "failed to create listing: %w"
	ErrMsgDeleteListingFailed     = "failed to delete listing: %w"
	ErrMsgCreditSellerFailed      = "failed to credit seller: %w"
	ErrMsgTransferItemFailed      = "failed to transfer item: %w"
	ErrMsgGetListingsFailed       = "failed to get listings: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgSellCalled      = "Sell called"
	LogMsgItemListed      = "Item listed"
	LogMsgBuyCalled       = "Buy called"
	LogMsgListingSold     = "Listing sold"
	LogMsgCancelCalled    = "Cancel called"
	LogMsgListingCanceled = "Listing cancelled"
)
