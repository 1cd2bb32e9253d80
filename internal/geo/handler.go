package geo

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/marketloop/marketplace/pkg/common"
)

// Handler handles HTTP requests for geographic grouping
type Handler struct {
	service *Service
}

// NewHandler creates a new geo handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetNearbySellers partitions active sellers around the caller's pincode
func (h *Handler) GetNearbySellers(c *gin.Context) {
	pincode := c.Query("pincode")
	if pincode == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "pincode is required")
		return
	}

	userID := uuid.Nil
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "invalid user id")
			return
		}
		userID = parsed
	}

	groups, region, err := h.service.NearbySellers(c.Request.Context(), pincode, userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{
		"pincode": NormalizePincode(pincode),
		"region":  region, // nil for unknown pincodes
		"groups":  groups,
	})
}
