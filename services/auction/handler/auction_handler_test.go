package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/registry"
	"auction-marketplace/internal/searchindex"
	"auction-marketplace/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupRouter(h *AuctionHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions", h.ListItemHandler)
	router.DELETE("/auctions/:auction_id", h.DeleteAuctionHandler)
	router.GET("/auctions/top", h.GetTopAuctionHandler)
	router.GET("/auctions/:auction_id", h.GetAuctionHandler)
	router.POST("/auctions/:auction_id/bids", h.PlaceBidHandler)
	router.GET("/auctions/:auction_id/bids", h.GetAuctionBidsHandler)
	router.POST("/sellers/:seller_id/ratings", h.RateSellerHandler)
	router.GET("/sellers/top", h.GetTopSellerHandler)
	router.GET("/users/:user_id/auctions", h.GetUserAuctionsHandler)
	router.GET("/users/:user_id/recommendation", h.GetRecommendationHandler)
	router.GET("/items/search", h.SearchItemsHandler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestListItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionService(ctrl)
	search := searchindex.New()
	router := setupRouter(NewAuctionHandler(mockService, search))

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			requestBody: helpers.ListItemRequest{
				SellerID: "u1",
				Name:     "Desk Lamp",
				MinValue: 25,
			},
			mockSetup: func() {
				mockService.EXPECT().
					ListItem("u1", "Desk Lamp", "", decimal.NewFromFloat(25.0)).
					Return("a0", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "item listed successfully",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_seller",
			requestBody: helpers.ListItemRequest{
				Name:     "Desk Lamp",
				MinValue: 25,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "zero_min_value",
			requestBody: helpers.ListItemRequest{
				SellerID: "u1",
				Name:     "Desk Lamp",
				MinValue: 0,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_rejects_item",
			requestBody: helpers.ListItemRequest{
				SellerID: "u1",
				Name:     "Desk Lamp",
				MinValue: 10,
			},
			mockSetup: func() {
				mockService.EXPECT().
					ListItem("u1", "Desk Lamp", "", decimal.NewFromFloat(10.0)).
					Return("", fmt.Errorf("wrapped: %w", auctionerrors.ErrInvalidItem))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid item details",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w, resp := doJSON(t, router, http.MethodPost, "/auctions", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp["message"])
		})
	}

	// the successful listing entered the search index
	id, ok := search.Get("desk lamp")
	require.True(t, ok)
	require.Equal(t, "a0", id)
}

func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionService(ctrl)
	router := setupRouter(NewAuctionHandler(mockService, searchindex.New()))

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "accepted",
			requestBody: helpers.PlaceBidRequest{UserID: "u1", Amount: 120},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("a0", "u1", decimal.NewFromFloat(120.0)).
					Return(true)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
		},
		{
			name:        "rejected_is_conflict_not_error",
			requestBody: helpers.PlaceBidRequest{UserID: "u1", Amount: 50},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("a0", "u1", decimal.NewFromFloat(50.0)).
					Return(false)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid rejected",
		},
		{
			name:           "missing_user",
			requestBody:    helpers.PlaceBidRequest{Amount: 50},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "negative_amount",
			requestBody:    helpers.PlaceBidRequest{UserID: "u1", Amount: -5},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w, resp := doJSON(t, router, http.MethodPost, "/auctions/a0/bids", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp["message"])
		})
	}
}

func TestDeleteAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionService(ctrl)
	router := setupRouter(NewAuctionHandler(mockService, searchindex.New()))

	mockService.EXPECT().DeleteAuction("a0").Return(true)
	w, resp := doJSON(t, router, http.MethodDelete, "/auctions/a0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "auction deleted successfully", resp["message"])

	mockService.EXPECT().DeleteAuction("a1").Return(false)
	w, resp = doJSON(t, router, http.MethodDelete, "/auctions/a1", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "auction cannot be deleted", resp["message"])
}

func TestGetAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionService(ctrl)
	router := setupRouter(NewAuctionHandler(mockService, searchindex.New()))

	endsAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mockService.EXPECT().AuctionInfo("a0").Return(registry.AuctionInfo{
		ID:       "a0",
		SellerID: "u1",
		Item: models.Item{
			Name:     "Desk Lamp",
			MinValue: decimal.NewFromInt(25),
		},
		EndsAt:        endsAt,
		TimeLeft:      90 * time.Second,
		BidderCount:   2,
		HighestBid:    decimal.NewFromInt(140),
		HighestBidder: "u2",
	}, nil)

	w, resp := doJSON(t, router, http.MethodGet, "/auctions/a0", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, "a0", data["auction_id"])
	require.Equal(t, "Desk Lamp", data["item_name"])
	require.Equal(t, 25.0, data["min_value"])
	require.Equal(t, "2026-08-01T12:00:00Z", data["ends_at"])
	require.Equal(t, 90.0, data["time_left_seconds"])
	require.Equal(t, 2.0, data["bidder_count"])
	require.Equal(t, 140.0, data["highest_bid"])
	require.Equal(t, "u2", data["highest_bidder"])

	mockService.EXPECT().AuctionInfo("a9").
		Return(registry.AuctionInfo{}, fmt.Errorf("wrapped: %w", auctionerrors.ErrAuctionNotFound))
	w, resp = doJSON(t, router, http.MethodGet, "/auctions/a9", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "auction not found", resp["message"])
}

func TestGetAuctionBidsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionService(ctrl)
	router := setupRouter(NewAuctionHandler(mockService, searchindex.New()))

	mockService.EXPECT().UsersBidding("a0").Return([]models.BidEntry{
		{UserID: "u1", Amount: decimal.NewFromInt(120)},
		{UserID: "u2", Amount: decimal.NewFromInt(150)},
	}, nil)

	w, resp := doJSON(t, router, http.MethodGet, "/auctions/a0/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bidders := resp["data"].([]any)
	require.Len(t, bidders, 2)
	first := bidders[0].(map[string]any)
	require.Equal(t, "u1", first["user_id"])
	require.Equal(t, 120.0, first["amount"])

	mockService.EXPECT().UsersBidding("a1").Return(nil, nil)
	w, resp = doJSON(t, router, http.MethodGet, "/auctions/a1/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"])

	mockService.EXPECT().UsersBidding("a9").
		Return(nil, fmt.Errorf("wrapped: %w", auctionerrors.ErrAuctionNotFound))
	w, resp = doJSON(t, router, http.MethodGet, "/auctions/a9/bids", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "auction not found", resp["message"])
}

func TestRateSellerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionService(ctrl)
	router := setupRouter(NewAuctionHandler(mockService, searchindex.New()))

	mockService.EXPECT().RateSeller("u1", 5).Return(nil)
	w, resp := doJSON(t, router, http.MethodPost, "/sellers/u1/ratings", helpers.RateSellerRequest{Stars: 5})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "rating recorded successfully", resp["message"])

	// star range is validated at the binding edge
	w, resp = doJSON(t, router, http.MethodPost, "/sellers/u1/ratings", helpers.RateSellerRequest{Stars: 6})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "invalid request payload", resp["message"])

	mockService.EXPECT().RateSeller("ghost", 3).
		Return(fmt.Errorf("wrapped: %w", auctionerrors.ErrUnknownUser))
	w, resp = doJSON(t, router, http.MethodPost, "/sellers/ghost/ratings", helpers.RateSellerRequest{Stars: 3})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "user not found", resp["message"])
}

func TestTopHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionService(ctrl)
	router := setupRouter(NewAuctionHandler(mockService, searchindex.New()))

	mockService.EXPECT().TopAuction().Return("a3", 7.0, true)
	w, resp := doJSON(t, router, http.MethodGet, "/auctions/top", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "a3", data["auction_id"])
	require.Equal(t, 7.0, data["bidder_count"])

	mockService.EXPECT().TopAuction().Return("", 0.0, false)
	w, _ = doJSON(t, router, http.MethodGet, "/auctions/top", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	mockService.EXPECT().TopRatedSeller().Return("u5", 4.5, true)
	w, resp = doJSON(t, router, http.MethodGet, "/sellers/top", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]any)
	require.Equal(t, "u5", data["seller_id"])
	require.Equal(t, 4.5, data["mean_stars"])

	mockService.EXPECT().TopRatedSeller().Return("", 0.0, false)
	w, _ = doJSON(t, router, http.MethodGet, "/sellers/top", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserAuctionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionService(ctrl)
	router := setupRouter(NewAuctionHandler(mockService, searchindex.New()))

	tests := []struct {
		name      string
		filter    string
		mockSetup func()
		expected  []any
	}{
		{
			name:   "offered_default",
			filter: "",
			mockSetup: func() {
				mockService.EXPECT().AuctionsOffered("u1").Return([]string{"a0", "a1"})
			},
			expected: []any{"a0", "a1"},
		},
		{
			name:   "bidding",
			filter: "?filter=bidding",
			mockSetup: func() {
				mockService.EXPECT().AuctionsBidIn("u1").Return([]string{"a2"})
			},
			expected: []any{"a2"},
		},
		{
			name:   "sold",
			filter: "?filter=sold",
			mockSetup: func() {
				mockService.EXPECT().AuctionsSold("u1").Return(nil)
			},
			expected: []any{},
		},
		{
			name:   "won",
			filter: "?filter=won",
			mockSetup: func() {
				mockService.EXPECT().AuctionsWon("u1").Return([]string{"a4"})
			},
			expected: []any{"a4"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w, resp := doJSON(t, router, http.MethodGet, "/users/u1/auctions"+tc.filter, nil)
			require.Equal(t, http.StatusOK, w.Code)
			data := resp["data"].(map[string]any)
			require.Equal(t, tc.expected, data["auction_ids"])
		})
	}

	w, resp := doJSON(t, router, http.MethodGet, "/users/u1/auctions?filter=bogus", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "unknown filter", resp["message"])
}

func TestGetRecommendationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionService(ctrl)
	router := setupRouter(NewAuctionHandler(mockService, searchindex.New()))

	mockService.EXPECT().RecommendAuction("u1").Return("a7", nil)
	w, resp := doJSON(t, router, http.MethodGet, "/users/u1/recommendation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "a7", data["auction_id"])

	mockService.EXPECT().RecommendAuction("loner").
		Return("", fmt.Errorf("wrapped: %w", auctionerrors.ErrNoRecommendation))
	w, resp = doJSON(t, router, http.MethodGet, "/users/loner/recommendation", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "no recommendation available", resp["message"])
}

func TestSearchItemsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	search := searchindex.New()
	search.Put("Bookshelf", "a0")
	search.Put("Book Stand", "a1")
	search.Put("Typewriter", "a2")

	router := setupRouter(NewAuctionHandler(NewMockAuctionService(ctrl), search))

	w, resp := doJSON(t, router, http.MethodGet, "/items/search?prefix=book", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].([]any)
	require.Len(t, data, 2)
	first := data[0].(map[string]any)
	require.Equal(t, "book stand", first["name"])
	require.Equal(t, "a1", first["auction_id"])

	w, resp = doJSON(t, router, http.MethodGet, "/items/search?prefix=zzz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"])
}
