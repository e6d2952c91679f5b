package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KennethJT1/Artisan-backend/middlewares"
	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// ApplyArtisan handles a new artisan application
func ApplyArtisan(c *gin.Context) {
	var request models.ApplyArtisanRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	artisan, err := handlerServices.ArtisanService.Apply(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, artisan)
}

// ListArtisans returns one page of approved artisan profiles
func ListArtisans(c *gin.Context) {
	page, limit := paginationParams(c)

	response, err := handlerServices.ArtisanService.FindApproved(page, limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, response)
}

// ListCategories returns the active service categories
func ListCategories(c *gin.Context) {
	categories, err := handlerServices.ArtisanService.ListCategories()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, categories)
}

// CreateCategory registers a new service category
func CreateCategory(c *gin.Context) {
	var request models.CreateCategoryRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	category, err := handlerServices.ArtisanService.CreateCategory(request.Name)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, category)
}

// GetArtisan returns one artisan profile by id
func GetArtisan(c *gin.Context) {
	artisan, err := handlerServices.ArtisanService.GetArtisan(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, artisan)
}

// GetMyEarningsSummary returns the authenticated artisan's lifetime earnings
func GetMyEarningsSummary(c *gin.Context) {
	artisan, err := currentArtisan(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	summary, err := handlerServices.EarningsService.GetEarningsSummary(artisan.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, summary)
}

// GetMyEarningsHistory returns one page of the authenticated artisan's paid jobs
func GetMyEarningsHistory(c *gin.Context) {
	artisan, err := currentArtisan(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	page, limit := paginationParams(c)
	history, err := handlerServices.EarningsService.GetEarningsHistory(artisan.ID, page, limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, history)
}

// GetMyReviews returns one page of the authenticated artisan's reviews
func GetMyReviews(c *gin.Context) {
	artisan, err := currentArtisan(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	page, limit := paginationParams(c)
	reviews, err := handlerServices.EarningsService.GetReviewsByArtisan(artisan.ID, page, limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, reviews)
}

func currentArtisan(c *gin.Context) (*models.Artisan, error) {
	return handlerServices.ArtisanService.GetArtisanByUser(c.GetString(middlewares.ContextUserID))
}

func paginationParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
