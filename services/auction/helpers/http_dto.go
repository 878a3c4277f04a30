package helpers

// Request/Response DTOs
type ListItemRequest struct {
	SellerID    string  `json:"seller_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	MinValue    float64 `json:"min_value" binding:"required,gt=0"`
}

type ListItemResponse struct {
	AuctionID string `json:"auction_id"`
}

type PlaceBidRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type RateSellerRequest struct {
	Stars int `json:"stars" binding:"required,min=1,max=5"`
}

type BidderResponse struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

type AuctionResponse struct {
	AuctionID     string  `json:"auction_id"`
	SellerID      string  `json:"seller_id"`
	ItemName      string  `json:"item_name"`
	Description   string  `json:"description"`
	MinValue      float64 `json:"min_value"`
	EndsAt        string  `json:"ends_at"`
	TimeLeftSecs  float64 `json:"time_left_seconds"`
	BidderCount   int     `json:"bidder_count"`
	HighestBid    float64 `json:"highest_bid"`
	HighestBidder string  `json:"highest_bidder"`
	PurchaserID   string  `json:"purchaser_id"`
	Sold          bool    `json:"sold"`
	SoldSuccess   bool    `json:"sold_success"`
}

type TopAuctionResponse struct {
	AuctionID   string `json:"auction_id"`
	BidderCount int    `json:"bidder_count"`
}

type TopSellerResponse struct {
	SellerID  string  `json:"seller_id"`
	MeanStars float64 `json:"mean_stars"`
}
