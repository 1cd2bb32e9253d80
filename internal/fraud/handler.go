package fraud

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/marketloop/marketplace/pkg/common"
)

// Handler handles HTTP requests for listing fraud reports
type Handler struct {
	service *Service
}

// NewHandler creates a new fraud handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetFraudReport returns the fraud report for a listing-detail view.
// Low-risk reports are computed but withheld from the payload so clean
// listings render without fraud warnings.
func (h *Handler) GetFraudReport(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("listing_id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid listing id")
		return
	}

	report, err := h.service.AnalyzeListing(c.Request.Context(), listingID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	if report.Suppressed() {
		common.SuccessResponse(c, gin.H{
			"listing_id": listingID,
			"flagged":    false,
		})
		return
	}

	common.SuccessResponse(c, gin.H{
		"listing_id":   listingID,
		"flagged":      true,
		"fraud_report": report,
	})
}
