package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"progulka/internal/services"
	"progulka/pkg/utils"
)

type UsersController struct {
	routeService services.RouteServiceInterface
	statsService services.StatsServiceInterface
}

func NewUsersController(
	routeService services.RouteServiceInterface,
	statsService services.StatsServiceInterface,
) *UsersController {
	return &UsersController{
		routeService: routeService,
		statsService: statsService,
	}
}

// ListUserRoutes godoc
// @Summary List the user's routes
// @Description Fetch the authenticated user's routes, newest first, optionally filtered by status
// @Tags Users
// @Produce json
// @Param status query string false "Filter by status (going/done/cancelled)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} response_models.RouteSummary
// @Security BearerAuth
// @Router /users/routes [get]
func (u *UsersController) ListUserRoutes(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid offset")
		return
	}

	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	routes, err := u.routeService.ListUserRoutes(c.Request.Context(), userID, status, limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, routes, "Routes fetched successfully")
}

// GetUserStatistics godoc
// @Summary Get user statistics
// @Description Per-user rollups over all owned routes
// @Tags Users
// @Produce json
// @Success 200 {object} response_models.UserStatistics
// @Security BearerAuth
// @Router /users/statistics [get]
func (u *UsersController) GetUserStatistics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := u.statsService.BuildUserStatistics(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Statistics fetched successfully")
}
