package http

import (
	"errors"
	"net/http"

	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/token/domain"
	"github.com/aurumx/goldmarket/src/token/usecase"
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
	r.GET("/token/supply", h.TotalSupply)
	r.GET("/token/balance/:account", h.BalanceOf)
	r.GET("/token/allowance", h.Allowance)
	r.POST("/token/transfer", h.Transfer)
	r.POST("/token/approve", h.Approve)
	r.POST("/token/transfer-from", h.TransferFrom)
}

// BalanceOf godoc
//
//	@Summary		Get account balance
//	@Description	Settlement-token balance of one account
//	@Tags			token
//	@Produce		json
//	@Param			account	path		string	true	"Account id"
//	@Success		200	{object}	BalanceResponse
//	@Failure		500	{object}	object{error=string}
//	@Router			/token/balance/{account} [get]
func (h *Handler) BalanceOf(c *gin.Context) {
	ctx := c.Request.Context()
	account := c.Param("account")
	amount, err := h.service.BalanceOf(ctx, account)
	if err != nil {
		h.logger.Errorf("BalanceOf err: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{Account: account, Amount: amount})
}

// TotalSupply godoc
//
//	@Summary		Get issued supply
//	@Tags			token
//	@Produce		json
//	@Success		200	{object}	SupplyResponse
//	@Failure		500	{object}	object{error=string}
//	@Router			/token/supply [get]
func (h *Handler) TotalSupply(c *gin.Context) {
	ctx := c.Request.Context()
	total, err := h.service.TotalSupply(ctx)
	if err != nil {
		h.logger.Errorf("TotalSupply err: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, SupplyResponse{Total: total})
}

// Allowance godoc
//
//	@Summary		Get allowance
//	@Description	Remaining pull authorization for (owner, spender)
//	@Tags			token
//	@Produce		json
//	@Param			owner	query		string	true	"Owner account"
//	@Param			spender	query		string	true	"Spender account"
//	@Success		200	{object}	AllowanceResponse
//	@Failure		500	{object}	object{error=string}
//	@Router			/token/allowance [get]
func (h *Handler) Allowance(c *gin.Context) {
	ctx := c.Request.Context()
	owner := c.Query("owner")
	spender := c.Query("spender")
	limit, err := h.service.Allowance(ctx, owner, spender)
	if err != nil {
		h.logger.Errorf("Allowance err: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, AllowanceResponse{Owner: owner, Spender: spender, Limit: limit})
}

// Transfer godoc
//
//	@Summary		Transfer tokens
//	@Tags			token
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TransferRequestBody	true	"Request body"
//	@Success		200	{object}	object{status=string}
//	@Failure		400	{object}	object{error=string}
//	@Failure		409	{object}	object{error=string}
//	@Router			/token/transfer [post]
func (h *Handler) Transfer(c *gin.Context) {
	ctx := c.Request.Context()
	var req TransferRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	if err := h.service.Transfer(ctx, req.From, req.To, amount); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Approve godoc
//
//	@Summary		Approve a spender
//	@Description	Overwrites the (owner, spender) limit; zero revokes
//	@Tags			token
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ApproveRequestBody	true	"Request body"
//	@Success		200	{object}	object{status=string}
//	@Failure		400	{object}	object{error=string}
//	@Router			/token/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	ctx := c.Request.Context()
	var req ApproveRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	limit, err := decimal.NewFromString(req.Limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	if err := h.service.Approve(ctx, req.Owner, req.Spender, limit); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// TransferFrom godoc
//
//	@Summary		Pull tokens under an authorization
//	@Tags			token
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TransferFromRequestBody	true	"Request body"
//	@Success		200	{object}	object{status=string}
//	@Failure		400	{object}	object{error=string}
//	@Failure		409	{object}	object{error=string}
//	@Router			/token/transfer-from [post]
func (h *Handler) TransferFrom(c *gin.Context) {
	ctx := c.Request.Context()
	var req TransferFromRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	if err := h.service.TransferFrom(ctx, req.Spender, req.Owner, req.To, amount); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInsufficientAllowance):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Errorf("token handler err: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
