package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"progulka/internal/services"
	"progulka/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetFormData godoc
// @Summary Get route form data
// @Description Cities, interests and moods for the route request form
// @Tags Catalog
// @Produce json
// @Success 200 {object} response_models.FormDataResponse
// @Router /routes/form [get]
func (ct *CatalogController) GetFormData(c *gin.Context) {
	data, err := ct.catalogService.GetFormData(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, data, "Form data fetched successfully")
}

// GetCityAreas godoc
// @Summary Get city areas
// @Description Areas of a city selected by city_id
// @Tags Catalog
// @Produce json
// @Param city_id query string true "City ID"
// @Success 200 {object} response_models.CityAreasResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routes/area [get]
func (ct *CatalogController) GetCityAreas(c *gin.Context) {
	cityID := c.Query("city_id")
	if cityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "city_id parameter is required")
		return
	}

	areas, err := ct.catalogService.GetCityAreas(c.Request.Context(), cityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, areas, "City areas fetched successfully")
}
