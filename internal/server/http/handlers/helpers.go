package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
	"github.com/jokistudio/portal/internal/domain/model"
	"github.com/jokistudio/portal/internal/server/http/dto"
	"github.com/jokistudio/portal/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated principal from context.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrValidation), errors.Is(err, domainErrors.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		// Internal details never reach the caller.
		c.JSON(status, dto.ErrorResponse{Message: "terjadi kesalahan pada server"})
		return
	}
	c.JSON(status, dto.ErrorResponse{Message: err.Error()})
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Image: user.Image,
		Role:  string(user.Role),
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:             order.ID,
		Nama:           order.Nama,
		NamaAplikasi:   order.NamaAplikasi,
		Keperluan:      order.Keperluan,
		Teknologi:      order.Teknologi,
		Fitur:          order.Fitur,
		Deadline:       order.Deadline,
		AkunTiktok:     order.AkunTiktok,
		Status:         string(order.Status),
		BuktiDP:        order.BuktiDP,
		BuktiPelunasan: order.BuktiPelunasan,
		CreatedAt:      order.CreatedAt,
	}
}

func toPortfolioResponse(p model.Portfolio) dto.PortfolioResponse {
	return dto.PortfolioResponse{
		ID:        p.ID,
		Nama:      p.Nama,
		Deskripsi: p.Deskripsi,
		TechStack: p.TechStack,
		Link:      p.Link,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
	}
}
