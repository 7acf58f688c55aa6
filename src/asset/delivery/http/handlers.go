package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aurumx/goldmarket/src/asset/domain"
	"github.com/aurumx/goldmarket/src/asset/usecase"
	"github.com/aurumx/goldmarket/src/logger"

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
	r.POST("/assets/mint", h.Mint)
	r.GET("/assets/:id", h.Get)
	r.POST("/assets/:id/approve", h.Approve)
	r.POST("/assets/:id/transfer", h.Transfer)
}

// Mint godoc
//
//	@Summary		Mint an asset
//	@Description	Records a new unique asset and returns its sequential id
//	@Tags			asset
//	@Accept			json
//	@Produce		json
//	@Param			request	body		MintRequestBody	true	"Request body"
//	@Success		200	{object}	MintResponse
//	@Failure		400	{object}	object{error=string}
//	@Router			/assets/mint [post]
func (h *Handler) Mint(c *gin.Context) {
	ctx := c.Request.Context()
	var req MintRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	id, err := h.service.Mint(ctx, req.Owner, req.MetadataRef)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MintResponse{ID: id})
}

// Get godoc
//
//	@Summary		Get an asset
//	@Tags			asset
//	@Produce		json
//	@Param			id	path		integer	true	"Asset id"
//	@Success		200	{object}	AssetDto
//	@Failure		404	{object}	object{error=string}
//	@Router			/assets/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.assetID(c)
	if !ok {
		return
	}
	a, err := h.service.Get(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, AssetDtoFromDomain(a))
}

// Approve godoc
//
//	@Summary		Approve a transfer party
//	@Description	Owner authorizes spender to move this asset; last write wins
//	@Tags			asset
//	@Accept			json
//	@Produce		json
//	@Param			id	path		integer	true	"Asset id"
//	@Param			request	body		ApproveRequestBody	true	"Request body"
//	@Success		200	{object}	object{status=string}
//	@Failure		403	{object}	object{error=string}
//	@Failure		404	{object}	object{error=string}
//	@Router			/assets/{id}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.assetID(c)
	if !ok {
		return
	}
	var req ApproveRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.service.Approve(ctx, req.Caller, id, req.Spender); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Transfer godoc
//
//	@Summary		Transfer an asset
//	@Description	Reassigns ownership; operator acts under a prior approval
//	@Tags			asset
//	@Accept			json
//	@Produce		json
//	@Param			id	path		integer	true	"Asset id"
//	@Param			request	body		TransferRequestBody	true	"Request body"
//	@Success		200	{object}	object{status=string}
//	@Failure		403	{object}	object{error=string}
//	@Failure		404	{object}	object{error=string}
//	@Router			/assets/{id}/transfer [post]
func (h *Handler) Transfer(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.assetID(c)
	if !ok {
		return
	}
	var req TransferRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	var err error
	if req.Operator != "" && req.Operator != req.From {
		err = h.service.TransferFrom(ctx, req.Operator, id, req.From, req.To)
	} else {
		err = h.service.Transfer(ctx, id, req.From, req.To)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) assetID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownAsset):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrTransferNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		h.logger.Errorf("asset handler err: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
