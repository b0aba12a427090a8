package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhvn/sourcehub/internal/server/http/dto"
)

// QuoteHandler manages quote endpoints.
type QuoteHandler struct {
	facade QuoteFacade
}

// NewQuoteHandler constructs QuoteHandler.
func NewQuoteHandler(facade QuoteFacade) *QuoteHandler {
	return &QuoteHandler{facade: facade}
}

// Submit handles POST /api/rfqs/:id/quotes.
func (h *QuoteHandler) Submit(c *gin.Context) {
	rfqID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	quote, err := h.facade.SubmitQuote(c.Request.Context(), CurrentActor(c), rfqID, req.Price, req.MinOrderQty, req.LeadTimeDays, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuoteResponse(*quote))
}

// Accept handles POST /api/quotes/:id/accept.
func (h *QuoteHandler) Accept(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	contract, err := h.facade.AcceptQuote(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContractResponse(*contract))
}

// Reject handles POST /api/quotes/:id/reject.
func (h *QuoteHandler) Reject(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	quote, err := h.facade.RejectQuote(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(*quote))
}

// List handles GET /api/quotes.
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.facade.Quotes(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponses(quotes))
}
