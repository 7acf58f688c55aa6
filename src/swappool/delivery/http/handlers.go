package http

import (
	"errors"
	"net/http"

	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/swappool/domain"
	"github.com/aurumx/goldmarket/src/swappool/usecase"
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
	r.GET("/pool/reserves", h.Reserves)
	r.GET("/pool/value-balance/:account", h.ValueBalance)
	r.POST("/pool/deposit", h.Deposit)
	r.POST("/pool/add-liquidity", h.AddLiquidity)
	r.POST("/pool/buy", h.BuyTokens)
	r.POST("/pool/sell", h.SellTokens)
}

// Reserves godoc
//
//	@Summary		Pool reserves
//	@Tags			pool
//	@Produce		json
//	@Success		200	{object}	ReservesResponse
//	@Failure		500	{object}	object{error=string}
//	@Router			/pool/reserves [get]
func (h *Handler) Reserves(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.service.Reserves(ctx)
	if err != nil {
		h.logger.Errorf("Reserves err: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ReservesResponseFromDomain(p))
}

// ValueBalance godoc
//
//	@Summary		Value-unit balance
//	@Tags			pool
//	@Produce		json
//	@Param			account	path		string	true	"Account id"
//	@Success		200	{object}	ValueBalanceResponse
//	@Failure		500	{object}	object{error=string}
//	@Router			/pool/value-balance/{account} [get]
func (h *Handler) ValueBalance(c *gin.Context) {
	ctx := c.Request.Context()
	account := c.Param("account")
	amount, err := h.service.ValueBalanceOf(ctx, account)
	if err != nil {
		h.logger.Errorf("ValueBalance err: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ValueBalanceResponse{Account: account, Amount: amount})
}

// Deposit godoc
//
//	@Summary		Credit value units (administrative)
//	@Tags			pool
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DepositRequestBody	true	"Request body"
//	@Success		200	{object}	object{status=string}
//	@Failure		400	{object}	object{error=string}
//	@Router			/pool/deposit [post]
func (h *Handler) Deposit(c *gin.Context) {
	ctx := c.Request.Context()
	var req DepositRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	if err := h.service.DepositValue(ctx, req.Account, amount); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AddLiquidity godoc
//
//	@Summary		Add liquidity
//	@Description	One-sided: deposits caller value units into the reserve
//	@Tags			pool
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddLiquidityRequestBody	true	"Request body"
//	@Success		200	{object}	object{status=string}
//	@Failure		400	{object}	object{error=string}
//	@Failure		409	{object}	object{error=string}
//	@Router			/pool/add-liquidity [post]
func (h *Handler) AddLiquidity(c *gin.Context) {
	ctx := c.Request.Context()
	var req AddLiquidityRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	if err := h.service.AddLiquidity(ctx, req.Caller, amount); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// BuyTokens godoc
//
//	@Summary		Buy tokens for value units
//	@Description	Fixed rate, no slippage; fails when the token reserve is short
//	@Tags			pool
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BuyTokensRequestBody	true	"Request body"
//	@Success		200	{object}	BuyTokensResponse
//	@Failure		400	{object}	object{error=string}
//	@Failure		409	{object}	object{error=string}
//	@Router			/pool/buy [post]
func (h *Handler) BuyTokens(c *gin.Context) {
	ctx := c.Request.Context()
	var req BuyTokensRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	amount, err := decimal.NewFromString(req.ValueAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid value_amount"})
		return
	}
	tokenOut, err := h.service.BuyTokens(ctx, req.Caller, amount)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, BuyTokensResponse{TokenOut: tokenOut})
}

// SellTokens godoc
//
//	@Summary		Sell tokens for value units
//	@Description	Pull-based: caller must pre-approve the pool account
//	@Tags			pool
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SellTokensRequestBody	true	"Request body"
//	@Success		200	{object}	SellTokensResponse
//	@Failure		400	{object}	object{error=string}
//	@Failure		409	{object}	object{error=string}
//	@Router			/pool/sell [post]
func (h *Handler) SellTokens(c *gin.Context) {
	ctx := c.Request.Context()
	var req SellTokensRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	amount, err := decimal.NewFromString(req.TokenAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid token_amount"})
		return
	}
	valueOut, err := h.service.SellTokens(ctx, req.Caller, amount)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SellTokensResponse{ValueOut: valueOut})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInsufficientLiquidity),
		errors.Is(err, domain.ErrInsufficientValue),
		errors.Is(err, tokendomain.ErrInsufficientBalance),
		errors.Is(err, tokendomain.ErrInsufficientAllowance):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Errorf("pool handler err: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
