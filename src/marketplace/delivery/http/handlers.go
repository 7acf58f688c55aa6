package http

import (
	"errors"
	"net/http"
	"strconv"

	assetdomain "github.com/aurumx/goldmarket/src/asset/domain"
	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/marketplace/domain"
	"github.com/aurumx/goldmarket/src/marketplace/usecase"
	tokendomain "github.com/aurumx/goldmarket/src/token/domain"
	"github.com/shopspring/decimal"

	"github.com/gin-gonic/gin"
)

// Handler binds usecase + logger
type Handler struct {
	service *usecase.Service
	logger  *logger.Logger
}

func NewHandler(s *usecase.Service, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/marketplace/config", h.Config)
	r.GET("/marketplace/items", h.ListItems)
	r.GET("/marketplace/items/:id", h.GetItem)
	r.POST("/marketplace/items", h.MakeItem)
	r.POST("/marketplace/items/:id/purchase", h.PurchaseItem)
}

// Config godoc
//
//	@Summary		Marketplace parameters
//	@Tags			marketplace
//	@Produce		json
//	@Success		200	{object}	ConfigResponse
//	@Router			/marketplace/config [get]
func (h *Handler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		Account:    h.service.Account(),
		FeeAccount: h.service.FeeAccount(),
		FeePercent: h.service.FeePercent(),
	})
}

// MakeItem godoc
//
//	@Summary		List an asset for sale
//	@Description	Creates a listing; the asset is not escrowed
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			request	body		MakeItemRequestBody	true	"Request body"
//	@Success		200	{object}	MakeItemResponse
//	@Failure		400	{object}	object{error=string}
//	@Failure		404	{object}	object{error=string}
//	@Router			/marketplace/items [post]
func (h *Handler) MakeItem(c *gin.Context) {
	ctx := c.Request.Context()
	var req MakeItemRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}
	id, err := h.service.MakeItem(ctx, req.Seller, req.RegistryRef, req.AssetID, price)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MakeItemResponse{ListingID: id})
}

// PurchaseItem godoc
//
//	@Summary		Purchase a listing
//	@Description	Atomically settles funds, fee and asset ownership
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			id	path		integer	true	"Listing id"
//	@Param			request	body		PurchaseRequestBody	true	"Request body"
//	@Success		200	{object}	object{status=string}
//	@Failure		400	{object}	object{error=string}
//	@Failure		404	{object}	object{error=string}
//	@Failure		409	{object}	object{error=string}
//	@Router			/marketplace/items/{id}/purchase [post]
func (h *Handler) PurchaseItem(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.listingID(c)
	if !ok {
		return
	}
	var req PurchaseRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.service.PurchaseItem(ctx, req.Buyer, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetItem godoc
//
//	@Summary		Get a listing
//	@Tags			marketplace
//	@Produce		json
//	@Param			id	path		integer	true	"Listing id"
//	@Success		200	{object}	ListingDto
//	@Failure		404	{object}	object{error=string}
//	@Router			/marketplace/items/{id} [get]
func (h *Handler) GetItem(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.listingID(c)
	if !ok {
		return
	}
	l, err := h.service.GetListing(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListingDtoFromDomain(l))
}

// ListItems godoc
//
//	@Summary		List all listings
//	@Tags			marketplace
//	@Produce		json
//	@Success		200	{object}	ListListingsResponse
//	@Failure		500	{object}	object{error=string}
//	@Router			/marketplace/items [get]
func (h *Handler) ListItems(c *gin.Context) {
	ctx := c.Request.Context()
	ls, err := h.service.ListListings(ctx)
	if err != nil {
		h.logger.Errorf("ListItems err: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ListListingsResponseFromDomain(ls))
}

func (h *Handler) listingID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidAssetReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnknownListing),
		errors.Is(err, assetdomain.ErrUnknownAsset):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadySold),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, tokendomain.ErrInsufficientAllowance),
		errors.Is(err, assetdomain.ErrTransferNotAuthorized):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Errorf("marketplace handler err: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
