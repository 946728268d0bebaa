package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
	"github.com/jokistudio/portal/internal/server/http/dto"
	"github.com/jokistudio/portal/internal/usecase"
)

// PortfolioHandler manages the public showcase and its admin endpoints.
type PortfolioHandler struct {
	facade PortfolioFacade
}

// NewPortfolioHandler constructs PortfolioHandler.
func NewPortfolioHandler(facade PortfolioFacade) *PortfolioHandler {
	return &PortfolioHandler{facade: facade}
}

// List handles GET /api/portofolio. No authentication required.
func (h *PortfolioHandler) List(c *gin.Context) {
	items, err := h.facade.Portfolios(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.PortfolioResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toPortfolioResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/portofolio.
func (h *PortfolioHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req dto.PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domainErrors.ErrValidation)
		return
	}

	created, err := h.facade.CreatePortfolio(c.Request.Context(), user, toPortfolioDraft(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPortfolioResponse(*created))
}

// Update handles PUT /api/portofolio/:id.
func (h *PortfolioHandler) Update(c *gin.Context) {
	user := CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, fmt.Errorf("%w: id portofolio tidak valid", domainErrors.ErrValidation))
		return
	}

	var req dto.PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domainErrors.ErrValidation)
		return
	}

	updated, err := h.facade.UpdatePortfolio(c.Request.Context(), user, id, toPortfolioDraft(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPortfolioResponse(*updated))
}

// Delete handles DELETE /api/portofolio/:id.
func (h *PortfolioHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, fmt.Errorf("%w: id portofolio tidak valid", domainErrors.ErrValidation))
		return
	}

	if err := h.facade.DeletePortfolio(c.Request.Context(), user, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toPortfolioDraft(req dto.PortfolioRequest) usecase.PortfolioDraft {
	return usecase.PortfolioDraft{
		Nama:      req.Nama,
		Deskripsi: req.Deskripsi,
		TechStack: req.TechStack,
		Link:      req.Link,
		Image:     req.Image,
	}
}
