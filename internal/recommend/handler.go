package recommend

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/marketloop/marketplace/pkg/common"
)

// Handler handles HTTP requests for scored listing lists
type Handler struct {
	service *Service
}

// NewHandler creates a new recommend handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListListings returns active listings ranked by confidence score
func (h *Handler) ListListings(c *gin.Context) {
	category := c.Query("category")

	viewerID := uuid.Nil
	if raw := c.Query("viewer_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "invalid viewer id")
			return
		}
		viewerID = parsed
	}

	listings, err := h.service.ListScoredListings(c.Request.Context(), category, viewerID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.SuccessResponse(c, listings)
}
