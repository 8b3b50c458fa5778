package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"progulka/internal/models/request_models"
	"progulka/internal/models/response_models"
	"progulka/internal/services"
	"progulka/pkg/utils"
)

type EmbeddingsController struct {
	embeddingService services.EmbeddingServiceInterface
}

func NewEmbeddingsController(embeddingService services.EmbeddingServiceInterface) *EmbeddingsController {
	return &EmbeddingsController{embeddingService: embeddingService}
}

// EmbedMissing godoc
// @Summary Embed points without a vector
// @Description Create embeddings for every point that has none yet; already embedded points are skipped
// @Tags Embeddings
// @Produce json
// @Success 201 {object} response_models.EmbedMissingResponse
// @Security BearerAuth
// @Router /embeddings/embed-missing [post]
func (e *EmbeddingsController) EmbedMissing(c *gin.Context) {
	created, err := e.embeddingService.EmbedMissingPoints(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c,
		response_models.EmbedMissingResponse{CreatedEmbeddings: created},
		"Embeddings created")
}

// EmbedRefresh godoc
// @Summary Re-embed every point
// @Description Recompute and replace all embeddings as a single all-or-nothing batch
// @Tags Embeddings
// @Produce json
// @Success 200 {object} response_models.EmbedRefreshResponse
// @Security BearerAuth
// @Router /embeddings/embed-refresh [post]
func (e *EmbeddingsController) EmbedRefresh(c *gin.Context) {
	refreshed, err := e.embeddingService.RefreshAllEmbeddings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.EmbedRefreshResponse{RefreshedEmbeddings: refreshed},
		"Embeddings refreshed")
}

// EmbedUpdatePoint godoc
// @Summary Re-embed one point
// @Description Recompute the embedding for a single point
// @Tags Embeddings
// @Produce json
// @Param pointId path string true "Point ID"
// @Success 200 {object} response_models.EmbedUpdateResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /embeddings/embed-update/{pointId} [post]
func (e *EmbeddingsController) EmbedUpdatePoint(c *gin.Context) {
	pointID := c.Param("pointId")
	if pointID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Point ID is required")
		return
	}

	updatedID, err := e.embeddingService.UpdatePointEmbedding(c.Request.Context(), pointID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.EmbedUpdateResponse{PointID: updatedID, Message: "Embedding updated"},
		"Embedding updated")
}

// SearchPoints godoc
// @Summary Semantic point search
// @Description Match points against a free-text query by embedding similarity
// @Tags Embeddings
// @Accept json
// @Produce json
// @Param request body request_models.SearchPointsRequest true "Search query"
// @Success 200 {array} response_models.SimilarPoint
// @Security BearerAuth
// @Router /points/search [post]
func (e *EmbeddingsController) SearchPoints(c *gin.Context) {
	var req request_models.SearchPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "query is required")
		return
	}

	points, err := e.embeddingService.SearchSimilarPoints(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, points, "Points fetched successfully")
}
