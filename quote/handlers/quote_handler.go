package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	customerDal "github.com/nordbill/backoffice/customer/dal"
	"github.com/nordbill/backoffice/framework/connection"
	"github.com/nordbill/backoffice/framework/web"
	"github.com/nordbill/backoffice/logger"
	"github.com/nordbill/backoffice/money"
	"github.com/nordbill/backoffice/quote"
	"github.com/nordbill/backoffice/quote/dal"
	"github.com/nordbill/backoffice/quote/domain"
	"github.com/nordbill/backoffice/times"
)

type Quote struct {
	loggerProvider logger.Provider
	service        quote.IQuoteService
}

func NewQuote(loggerProvider logger.Provider, conn *connection.Connection) *Quote {
	return &Quote{
		loggerProvider,
		quote.NewQuoteService(loggerProvider, conn),
	}
}

type replaceItemsRequest struct {
	Items []quote.ItemInput `json:"items" binding:"required,dive"`
}

type totalsRequest struct {
	Items   []quote.ItemInput `json:"items" binding:"required,dive"`
	VATRate *float64          `json:"vatRate"`
}

type totalsResponse struct {
	Subtotal  float64 `json:"subtotal"`
	VATAmount float64 `json:"vatAmount"`
	Total     float64 `json:"total"`
}

type transitionRequest struct {
	Action domain.Action `json:"action" binding:"required"`
}

type quoteWithItems struct {
	*domain.Quote
	Items []*domain.QuoteItem `json:"items"`
}

func (h *Quote) CreateQuote(ctx *gin.Context) error {
	var req quote.CreateQuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	validate := validator.New()

	if err := validate.Struct(req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	created, err := h.service.CreateQuote(ctx, req)
	if err != nil {
		if errors.Is(err, customerDal.ErrCustomerNotFound) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, created, http.StatusCreated)
}

func (h *Quote) ListQuotes(ctx *gin.Context) error {
	quotes, err := h.service.ListQuotes(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	today := times.CurrentDayUTC()
	for _, q := range quotes {
		q.Status = q.DerivedStatus(today)
	}

	return web.Respond(ctx, quotes, http.StatusOK)
}

func (h *Quote) GetQuote(ctx *gin.Context) error {
	quoteID := ctx.Param("quoteID")
	if quoteID == "" {
		return web.NewRequestError(errors.New("missing quoteID parameter"), http.StatusBadRequest)
	}

	q, err := h.service.GetQuote(ctx, quoteID)
	if err != nil {
		if errors.Is(err, dal.ErrQuoteNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	items, err := h.service.GetItems(ctx, quoteID)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	q.Status = q.DerivedStatus(times.CurrentDayUTC())

	return web.Respond(ctx, quoteWithItems{q, items}, http.StatusOK)
}

func (h *Quote) DeleteQuote(ctx *gin.Context) error {
	quoteID := ctx.Param("quoteID")
	if quoteID == "" {
		return web.NewRequestError(errors.New("missing quoteID parameter"), http.StatusBadRequest)
	}

	if err := h.service.DeleteQuote(ctx, quoteID); err != nil {
		if errors.Is(err, dal.ErrQuoteNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

// ReplaceItems swaps the full item set of a draft or sent quote.
func (h *Quote) ReplaceItems(ctx *gin.Context) error {
	quoteID := ctx.Param("quoteID")
	if quoteID == "" {
		return web.NewRequestError(errors.New("missing quoteID parameter"), http.StatusBadRequest)
	}

	var req replaceItemsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	q, items, err := h.service.ReplaceItems(ctx, quoteID, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, dal.ErrQuoteNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		case errors.Is(err, quote.ErrQuoteNotEditable):
			return web.NewRequestError(err, http.StatusConflict)
		case errors.Is(err, money.ErrInvalidLineItem):
			return web.NewRequestError(err, http.StatusBadRequest)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, quoteWithItems{q, items}, http.StatusOK)
}

// ComputeTotals previews totals for an item set without touching any quote.
func (h *Quote) ComputeTotals(ctx *gin.Context) error {
	var req totalsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	vatRate := h.service.DefaultVATRate()
	if req.VATRate != nil {
		vatRate = decimal.NewFromFloat(*req.VATRate)
	}

	totals, err := h.service.ComputeQuoteTotals(req.Items, vatRate)
	if err != nil {
		if errors.Is(err, money.ErrInvalidLineItem) || errors.Is(err, money.ErrInvalidVATRate) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, totalsResponse{
		Subtotal:  totals.Subtotal.InexactFloat64(),
		VATAmount: totals.VATAmount.InexactFloat64(),
		Total:     totals.Total.InexactFloat64(),
	}, http.StatusOK)
}

// TransitionQuote applies one lifecycle action (markSent, accept, decline)
// to a quote.
func (h *Quote) TransitionQuote(ctx *gin.Context) error {
	quoteID := ctx.Param("quoteID")
	if quoteID == "" {
		return web.NewRequestError(errors.New("missing quoteID parameter"), http.StatusBadRequest)
	}

	var req transitionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	q, err := h.service.Transition(ctx, quoteID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, dal.ErrQuoteNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		case errors.Is(err, quote.ErrIllegalTransition):
			return web.NewRequestError(err, http.StatusConflict)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, q, http.StatusOK)
}
