package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhvn/sourcehub/internal/server/http/dto"
)

// ProductHandler manages catalog endpoints.
type ProductHandler struct {
	facade ProductFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), CurrentActor(c), req.Name, req.Description, req.Category, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(*product))
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// ListMine handles GET /api/products/mine.
func (h *ProductHandler) ListMine(c *gin.Context) {
	products, err := h.facade.SupplierProducts(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}
