package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"polisure/internal/models/request_models"
	"polisure/internal/services"
	"polisure/pkg/middleware"
	"polisure/pkg/utils"
)

type AuthController struct {
	accounts services.AccountServiceInterface
}

func NewAuthController(accounts services.AccountServiceInterface) *AuthController {
	return &AuthController{accounts: accounts}
}

func (ctl *AuthController) Signup(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := ctl.accounts.Signup(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, resp, "Account created")
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := ctl.accounts.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Logged in")
}

func (ctl *AuthController) Me(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	user, err := ctl.accounts.GetProfile(c.Request.Context(), actor.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "")
}

func (ctl *AuthController) UpdateMe(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := ctl.accounts.UpdateProfile(c.Request.Context(), actor.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "Profile updated")
}

func (ctl *AuthController) ListUsers(c *gin.Context) {
	users, err := ctl.accounts.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "")
}

func (ctl *AuthController) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := ctl.accounts.GetUser(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "")
}
