package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"progulka/internal/models/request_models"
	"progulka/internal/services"
	"progulka/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// AddFeedback godoc
// @Summary Add route feedback
// @Description Append a rating and/or comment to the user's route
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.AddFeedbackRequest true "Feedback payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/feedback [post]
func (f *FeedbackController) AddFeedback(c *gin.Context) {
	var req request_models.AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "route_id is required")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	feedback, err := f.feedbackService.AddFeedback(c.Request.Context(), req.RouteID, userID, req.Rating, req.Comment)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, feedback, "Feedback added successfully")
}
