package server

import (
	"auction-marketplace/internal/registry"
	"auction-marketplace/internal/searchindex"
	handler "auction-marketplace/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(reg *registry.Registry, search *searchindex.Index) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(reg, search)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.ListItemHandler)
		auctions.GET("/top", auctionHandler.GetTopAuctionHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.DELETE("/:auction_id", auctionHandler.DeleteAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetAuctionBidsHandler)
	}

	sellers := router.Group("/sellers")
	{
		sellers.GET("/top", auctionHandler.GetTopSellerHandler)
		sellers.POST("/:seller_id/ratings", auctionHandler.RateSellerHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/auctions", auctionHandler.GetUserAuctionsHandler)
		users.GET("/:user_id/recommendation", auctionHandler.GetRecommendationHandler)
	}

	items := router.Group("/items")
	{
		items.GET("/search", auctionHandler.SearchItemsHandler)
	}

	return router
}
