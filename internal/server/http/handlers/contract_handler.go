package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhvn/sourcehub/internal/server/http/dto"
)

// ContractHandler manages contract endpoints.
type ContractHandler struct {
	facade ContractFacade
}

// NewContractHandler constructs ContractHandler.
func NewContractHandler(facade ContractFacade) *ContractHandler {
	return &ContractHandler{facade: facade}
}

// Get handles GET /api/contracts/:id.
func (h *ContractHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	contract, err := h.facade.Contract(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContractResponse(*contract))
}

// List handles GET /api/contracts.
func (h *ContractHandler) List(c *gin.Context) {
	contracts, err := h.facade.Contracts(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContractResponses(contracts))
}
