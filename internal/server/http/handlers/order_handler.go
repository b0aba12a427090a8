package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhvn/sourcehub/internal/adapter/filestore"
	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/server/http/dto"
)

// maxProofSize bounds payment proof uploads to 8 MiB.
const maxProofSize = 8 << 20

// OrderHandler manages order fulfillment endpoints.
type OrderHandler struct {
	facade OrderFacade
	files  filestore.Store
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, files filestore.Store) *OrderHandler {
	return &OrderHandler{facade: facade, files: files}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentActor(c),
		req.ContractID, req.Quantity, req.ShippingAddress, req.Note, model.PaymentMethod(req.PaymentMethod))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(*order))
}

// Advance handles POST /api/orders/:id/status.
func (h *OrderHandler) Advance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.AdvanceOrder(c.Request.Context(), CurrentActor(c), id, model.OrderStatus(req.Status), req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// UploadPaymentProof handles POST /api/orders/:id/payment-proof. The file is
// stored first; only a successful store results in the order update.
func (h *OrderHandler) UploadPaymentProof(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("proof")
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if file.Size > maxProofSize {
		c.Status(http.StatusRequestEntityTooLarge)
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	defer src.Close()

	ref, err := h.files.Save(c.Request.Context(), file.Filename, src)
	if err != nil {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	order, err := h.facade.AttachPaymentProof(c.Request.Context(), CurrentActor(c), id, ref)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// List handles GET /api/orders with an optional status filter.
func (h *OrderHandler) List(c *gin.Context) {
	var status *model.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := model.OrderStatus(raw)
		if !s.Valid() {
			c.Status(http.StatusBadRequest)
			return
		}
		status = &s
	}

	orders, err := h.facade.Orders(c.Request.Context(), CurrentActor(c), status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponses(orders))
}

// Tracking handles GET /api/orders/:id/tracking.
func (h *OrderHandler) Tracking(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	trail, err := h.facade.OrderTracking(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrackingResponses(trail))
}
