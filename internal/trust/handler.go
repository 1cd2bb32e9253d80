package trust

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/marketloop/marketplace/pkg/common"
	"github.com/marketloop/marketplace/pkg/validation"
)

// Handler handles HTTP requests for seller trust and feedback
type Handler struct {
	service *Service
}

// NewHandler creates a new trust handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetSellerTrust returns a freshly derived trust snapshot for a seller
func (h *Handler) GetSellerTrust(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("seller_id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid seller id")
		return
	}

	snapshot, err := h.service.GetSellerTrust(c.Request.Context(), sellerID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.SuccessResponse(c, snapshot)
}

// GetSellerReviews returns paginated verified reviews for a seller
func (h *Handler) GetSellerReviews(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("seller_id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid seller id")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	reviews, meta, err := h.service.GetSellerReviews(c.Request.Context(), sellerID, page, limit)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.SuccessResponseWithMeta(c, reviews, meta)
}

// SubmitFeedback records buyer feedback for a completed order
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			verr := validation.NewValidationError(validationErrs)
			common.RespondWithError(c, common.NewBadRequestError("invalid feedback", verr.Errors))
			return
		}
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.service.SubmitFeedback(c.Request.Context(), &req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.CreatedResponse(c, event)
}

// VerifyFeedback marks a feedback event as moderation-verified
func (h *Handler) VerifyFeedback(c *gin.Context) {
	feedbackID, err := uuid.Parse(c.Param("feedback_id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid feedback id")
		return
	}

	if err := h.service.VerifyFeedback(c.Request.Context(), feedbackID); err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"verified": true})
}

// MarkHelpful increments the helpful counter on a feedback event
func (h *Handler) MarkHelpful(c *gin.Context) {
	feedbackID, err := uuid.Parse(c.Param("feedback_id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid feedback id")
		return
	}

	if err := h.service.MarkHelpful(c.Request.Context(), feedbackID); err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"helpful": true})
}
