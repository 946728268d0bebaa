package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
	"github.com/jokistudio/portal/internal/domain/model"
	"github.com/jokistudio/portal/internal/server/http/dto"
	"github.com/jokistudio/portal/internal/usecase"
)

// PesananHandler manages order endpoints on both surfaces.
type PesananHandler struct {
	facade OrderFacade
}

// NewPesananHandler constructs PesananHandler.
func NewPesananHandler(facade OrderFacade) *PesananHandler {
	return &PesananHandler{facade: facade}
}

// Create handles POST /api/pesanan.
func (h *PesananHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req dto.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domainErrors.ErrValidation)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), user.ID, model.OrderDraft{
		Nama:         req.Nama,
		NamaAplikasi: req.NamaAplikasi,
		Keperluan:    req.Keperluan,
		Teknologi:    req.Teknologi,
		Fitur:        req.Fitur,
		Deadline:     req.Deadline,
		AkunTiktok:   req.AkunTiktok,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/pesanan. The admin listing is selected with
// ?role=admin and honored only when the stored role is ADMIN; everyone
// else sees their own orders.
func (h *PesananHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	if c.Query("role") == "admin" && user.IsAdmin() {
		orders, err := h.facade.AllOrders(c.Request.Context(), user)
		if err != nil {
			writeError(c, err)
			return
		}
		response := make([]dto.OrderOwnerResponse, 0, len(orders))
		for _, o := range orders {
			response = append(response, dto.OrderOwnerResponse{
				OrderResponse: toOrderResponse(o.Order),
				User:          dto.OwnerResponse{Name: o.OwnerName, Email: o.OwnerEmail},
			})
		}
		c.JSON(http.StatusOK, response)
		return
	}

	orders, err := h.facade.MyOrders(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/pesanan/:id.
func (h *PesananHandler) Get(c *gin.Context) {
	user := CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, fmt.Errorf("%w: id pesanan tidak valid", domainErrors.ErrValidation))
		return
	}

	order, err := h.facade.Order(c.Request.Context(), user, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Patch handles PATCH /api/pesanan. The body selects the mutation: a
// status value moves the lifecycle (admin), a jenisBukti/bukti pair
// attaches a payment proof (owner).
func (h *PesananHandler) Patch(c *gin.Context) {
	user := CurrentUser(c)

	var req dto.OrderPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domainErrors.ErrValidation)
		return
	}
	if req.PesananID == 0 {
		writeError(c, fmt.Errorf("%w: pesananId wajib diisi", domainErrors.ErrValidation))
		return
	}

	switch {
	case req.Status != "" && req.JenisBukti != "":
		writeError(c, fmt.Errorf("%w: status dan jenisBukti tidak boleh bersamaan", domainErrors.ErrValidation))
	case req.Status != "":
		order, err := h.facade.SetOrderStatus(c.Request.Context(), user, req.PesananID, model.OrderStatus(req.Status))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(*order))
	case req.JenisBukti != "":
		kind, err := usecase.ParseProofKind(req.JenisBukti)
		if err != nil {
			writeError(c, err)
			return
		}
		order, err := h.facade.AttachProof(c.Request.Context(), user, req.PesananID, kind, req.Bukti)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(*order))
	default:
		writeError(c, fmt.Errorf("%w: tidak ada perubahan yang diminta", domainErrors.ErrValidation))
	}
}
