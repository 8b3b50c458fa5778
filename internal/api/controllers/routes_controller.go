package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"progulka/internal/models/request_models"
	"progulka/internal/services"
	"progulka/pkg/utils"
)

type RoutesController struct {
	routeService services.RouteServiceInterface
}

func NewRoutesController(routeService services.RouteServiceInterface) *RoutesController {
	return &RoutesController{routeService: routeService}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return uuid.Nil, false
	}
	return id, true
}

// GenerateRoute godoc
// @Summary Generate a walking route
// @Description Build a route for the given city, mood and time budget, and save it for the user
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body request_models.GenerateRouteRequest true "Generation parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/generate [post]
func (r *RoutesController) GenerateRoute(c *gin.Context) {
	var req request_models.GenerateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "city_id and duration_minutes are required")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	route, err := r.routeService.GenerateRoute(c.Request.Context(), req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route generated successfully")
}

// EditRouteStatus godoc
// @Summary Change route status
// @Description Move the user's route to going, done or cancelled
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body request_models.EditRouteStatusRequest true "Route ID and target status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/edit-status [post]
func (r *RoutesController) EditRouteStatus(c *gin.Context) {
	var req request_models.EditRouteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "route_id and status are required")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := r.routeService.ChangeStatus(c.Request.Context(), req.RouteID, req.Status, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Route status updated")
}

// CancelRoute godoc
// @Summary Cancel a route
// @Description Cancel the user's route and record the reason as feedback
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body request_models.CancelRouteRequest true "Route ID and optional reason"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/cancel [post]
func (r *RoutesController) CancelRoute(c *gin.Context) {
	var req request_models.CancelRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "route_id is required")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := r.routeService.CancelRoute(c.Request.Context(), req.RouteID, req.Reason, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Route cancelled")
}

// GetRouteDetail godoc
// @Summary Get route details
// @Description Fetch the full projection of the user's route, including its points
// @Tags Routes
// @Produce json
// @Param routeId path string true "Route ID"
// @Success 200 {object} response_models.RouteDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/show/{routeId} [get]
func (r *RoutesController) GetRouteDetail(c *gin.Context) {
	routeID := c.Param("routeId")
	if routeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Route ID is required")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	detail, err := r.routeService.GetRouteDetail(c.Request.Context(), routeID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Route details fetched successfully")
}
