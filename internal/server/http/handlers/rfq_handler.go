package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhvn/sourcehub/internal/server/http/dto"
)

// RFQHandler manages sourcing request endpoints.
type RFQHandler struct {
	facade RFQFacade
}

// NewRFQHandler constructs RFQHandler.
func NewRFQHandler(facade RFQFacade) *RFQHandler {
	return &RFQHandler{facade: facade}
}

// Create handles POST /api/rfqs.
func (h *RFQHandler) Create(c *gin.Context) {
	var req dto.RFQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	rfq, err := h.facade.CreateRFQ(c.Request.Context(), CurrentActor(c), req.ProductID, req.Quantity, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRFQResponse(*rfq))
}

// Get handles GET /api/rfqs/:id.
func (h *RFQHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	rfq, err := h.facade.RFQ(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRFQResponse(*rfq))
}

// List handles GET /api/rfqs.
func (h *RFQHandler) List(c *gin.Context) {
	rfqs, err := h.facade.RFQs(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRFQResponses(rfqs))
}

// Quotes handles GET /api/rfqs/:id/quotes.
func (h *RFQHandler) Quotes(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	quotes, err := h.facade.RFQQuotes(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponses(quotes))
}

// Close handles POST /api/rfqs/:id/close.
func (h *RFQHandler) Close(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	rfq, err := h.facade.CloseRFQ(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRFQResponse(*rfq))
}
