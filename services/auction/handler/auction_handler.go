package handler

import (
	"fmt"
	"net/http"
	"time"

	"auction-marketplace/internal/models"
	"auction-marketplace/internal/registry"
	"auction-marketplace/internal/searchindex"
	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_service.go -package=handler

// AuctionService is the registry surface the HTTP handlers depend on.
type AuctionService interface {
	ListItem(sellerID, name, description string, minValue decimal.Decimal) (string, error)
	PlaceBid(auctionID, userID string, amount decimal.Decimal) bool
	DeleteAuction(auctionID string) bool
	RateSeller(sellerID string, stars int) error
	AuctionInfo(auctionID string) (registry.AuctionInfo, error)
	UsersBidding(auctionID string) ([]models.BidEntry, error)
	TopAuction() (string, float64, bool)
	TopRatedSeller() (string, float64, bool)
	AuctionsOffered(userID string) []string
	AuctionsBidIn(userID string) []string
	AuctionsSold(userID string) []string
	AuctionsWon(userID string) []string
	RecommendAuction(userID string) (string, error)
}

type AuctionHandler struct {
	service AuctionService
	search  *searchindex.Index
}

func NewAuctionHandler(service AuctionService, search *searchindex.Index) *AuctionHandler {
	return &AuctionHandler{service: service, search: search}
}

// ListItemHandler handles POST /auctions
func (h *AuctionHandler) ListItemHandler(c *gin.Context) {
	var req helpers.ListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ListItemHandler", err)
		return
	}

	auctionID, err := h.service.ListItem(req.SellerID, req.Name, req.Description, decimal.NewFromFloat(req.MinValue))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListItemHandler: failed to list item", map[string]any{
			"seller_id": req.SellerID,
			"item_name": req.Name,
			"error":     err.Error(),
		})
		return
	}

	if h.search != nil {
		h.search.Put(req.Name, auctionID)
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ListItemResponse{AuctionID: auctionID}, "item listed successfully")
	helpers.LogSuccess("ListItemHandler", "item listed successfully", map[string]any{
		"auction_id": auctionID,
		"seller_id":  req.SellerID,
		"item_name":  req.Name,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	// a rejected bid is a policy outcome, not an error
	if !h.service.PlaceBid(auctionID, req.UserID, decimal.NewFromFloat(req.Amount)) {
		utils.JSONResponse(c, http.StatusConflict, gin.H{"accepted": false}, "bid rejected")
		utils.Info("PlaceBidHandler: bid rejected", map[string]any{
			"auction_id": auctionID,
			"user_id":    req.UserID,
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"accepted": true}, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"auction_id": auctionID,
		"user_id":    req.UserID,
		"amount":     req.Amount,
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:auction_id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	if !h.service.DeleteAuction(auctionID) {
		utils.JSONResponse(c, http.StatusConflict, gin.H{"deleted": false}, "auction cannot be deleted")
		utils.Info("DeleteAuctionHandler: delete rejected", map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"deleted": true}, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	info, err := h.service.AuctionInfo(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auctionResponse(info), "auction retrieved successfully")
}

// GetAuctionBidsHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetAuctionBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	entries, err := h.service.UsersBidding(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionBidsHandler: error retrieving bids", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	bidders := make([]helpers.BidderResponse, 0, len(entries))
	for _, entry := range entries {
		bidders = append(bidders, helpers.BidderResponse{
			UserID: entry.UserID,
			Amount: entry.Amount.InexactFloat64(),
		})
	}
	utils.JSONResponse(c, http.StatusOK, bidders, "bids retrieved successfully")
}

// RateSellerHandler handles POST /sellers/:seller_id/ratings
func (h *AuctionHandler) RateSellerHandler(c *gin.Context) {
	sellerID := c.Param("seller_id")

	var req helpers.RateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RateSellerHandler", err)
		return
	}

	if err := h.service.RateSeller(sellerID, req.Stars); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RateSellerHandler: rating failed", map[string]any{
			"seller_id": sellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"seller_id": sellerID, "stars": req.Stars}, "rating recorded successfully")
	helpers.LogSuccess("RateSellerHandler", "rating recorded successfully", map[string]any{
		"seller_id": sellerID,
		"stars":     req.Stars,
	})
}

// GetTopAuctionHandler handles GET /auctions/top
func (h *AuctionHandler) GetTopAuctionHandler(c *gin.Context) {
	auctionID, bidders, ok := h.service.TopAuction()
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("no active auctions"), "no active auctions")
		return
	}

	resp := helpers.TopAuctionResponse{AuctionID: auctionID, BidderCount: int(bidders)}
	utils.JSONResponse(c, http.StatusOK, resp, "top auction retrieved successfully")
}

// GetTopSellerHandler handles GET /sellers/top
func (h *AuctionHandler) GetTopSellerHandler(c *gin.Context) {
	sellerID, meanStars, ok := h.service.TopRatedSeller()
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("no rated sellers"), "no rated sellers")
		return
	}

	resp := helpers.TopSellerResponse{SellerID: sellerID, MeanStars: meanStars}
	utils.JSONResponse(c, http.StatusOK, resp, "top seller retrieved successfully")
}

// GetUserAuctionsHandler handles GET /users/:user_id/auctions?filter=
func (h *AuctionHandler) GetUserAuctionsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	filter := c.DefaultQuery("filter", "offered")

	var ids []string
	switch filter {
	case "offered":
		ids = h.service.AuctionsOffered(userID)
	case "bidding":
		ids = h.service.AuctionsBidIn(userID)
	case "sold":
		ids = h.service.AuctionsSold(userID)
	case "won":
		ids = h.service.AuctionsWon(userID)
	default:
		err := fmt.Errorf("unknown filter %q", filter)
		utils.JSONError(c, http.StatusBadRequest, err, "unknown filter")
		return
	}

	if ids == nil {
		ids = []string{}
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_ids": ids, "filter": filter}, "auctions retrieved successfully")
}

// GetRecommendationHandler handles GET /users/:user_id/recommendation
func (h *AuctionHandler) GetRecommendationHandler(c *gin.Context) {
	userID := c.Param("user_id")

	auctionID, err := h.service.RecommendAuction(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Info("GetRecommendationHandler: no recommendation", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID}, "recommendation retrieved successfully")
}

// SearchItemsHandler handles GET /items/search?prefix=
func (h *AuctionHandler) SearchItemsHandler(c *gin.Context) {
	prefix := c.Query("prefix")

	entries := h.search.Prefix(prefix)
	if entries == nil {
		entries = []searchindex.Entry{}
	}
	utils.JSONResponse(c, http.StatusOK, entries, "items retrieved successfully")
}

func auctionResponse(info registry.AuctionInfo) helpers.AuctionResponse {
	return helpers.AuctionResponse{
		AuctionID:     info.ID,
		SellerID:      info.SellerID,
		ItemName:      info.Item.Name,
		Description:   info.Item.Description,
		MinValue:      info.Item.MinValue.InexactFloat64(),
		EndsAt:        info.EndsAt.UTC().Format(time.RFC3339),
		TimeLeftSecs:  info.TimeLeft.Seconds(),
		BidderCount:   info.BidderCount,
		HighestBid:    info.HighestBid.InexactFloat64(),
		HighestBidder: info.HighestBidder,
		PurchaserID:   info.PurchaserID,
		Sold:          info.Sold,
		SoldSuccess:   info.SoldSuccess,
	}
}
