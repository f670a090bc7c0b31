package domain

import "time"

// Listing is an item offered for sale on the market. A listing is never
// modified after it is stored; it is either bought or cancelled, once.
type Listing struct {
	ID         int64         `json:"id"`
	Item       InventoryItem `json:"item"`
	Price      int64         `json:"price"`
	SellerID   string        `json:"sellerId"`
	SellerName string        `json:"sellerName"`
	CreatedAt  time.Time     `json:"createdAt"`
}
