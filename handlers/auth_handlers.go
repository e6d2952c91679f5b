package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/KennethJT1/Artisan-backend/middlewares"
	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// Register handles customer account creation
func Register(c *gin.Context) {
	var request models.RegisterRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	user, err := handlerServices.AuthService.Register(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, user)
}

// Login handles credential verification and token issuance
func Login(c *gin.Context) {
	var request models.LoginRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	response, err := handlerServices.AuthService.Login(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, response)
}

// GetProfile returns the authenticated user's account
func GetProfile(c *gin.Context) {
	userID := c.GetString(middlewares.ContextUserID)

	user, err := handlerServices.AuthService.GetUser(userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, user)
}
