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

type AdminController struct {
	catalog services.CatalogServiceInterface
	admin   services.AdminServiceInterface
	claims  services.ClaimServiceInterface
	stats   services.StatsServiceInterface
}

func NewAdminController(
	catalog services.CatalogServiceInterface,
	admin services.AdminServiceInterface,
	claims services.ClaimServiceInterface,
	stats services.StatsServiceInterface,
) *AdminController {
	return &AdminController{
		catalog: catalog,
		admin:   admin,
		claims:  claims,
		stats:   stats,
	}
}

func (ctl *AdminController) CreatePolicy(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req request_models.CreatePolicyProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := ctl.catalog.CreateProduct(c.Request.Context(), actor.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, product, "Policy created")
}

func (ctl *AdminController) UpdatePolicy(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid policy id")
		return
	}
	var req request_models.UpdatePolicyProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := ctl.catalog.UpdateProduct(c.Request.Context(), actor.ID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, product, "Policy updated")
}

func (ctl *AdminController) DeletePolicy(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid policy id")
		return
	}

	if err := ctl.catalog.DeleteProduct(c.Request.Context(), actor.ID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Policy deleted")
}

func (ctl *AdminController) CreateAgent(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req request_models.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	agent, err := ctl.admin.CreateAgent(c.Request.Context(), actor.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, agent, "Agent created")
}

func (ctl *AdminController) ListAgents(c *gin.Context) {
	agents, err := ctl.admin.ListAgents(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, agents, "")
}

func (ctl *AdminController) AssignAgent(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid customer id")
		return
	}
	var req request_models.AssignAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	customer, err := ctl.admin.AssignAgent(c.Request.Context(), actor.ID, customerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, customer, "Agent assignment updated")
}

func (ctl *AdminController) ListClaims(c *gin.Context) {
	claims, err := ctl.claims.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, claims, "")
}

func (ctl *AdminController) GetClaim(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid claim id")
		return
	}

	claim, err := ctl.claims.GetClaim(c.Request.Context(), actor, claimID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, claim, "")
}

func (ctl *AdminController) ReviewClaim(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid claim id")
		return
	}
	var req request_models.ReviewClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	claim, err := ctl.claims.Decide(c.Request.Context(), actor, claimID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, claim, "Claim reviewed")
}

func (ctl *AdminController) Summary(c *gin.Context) {
	summary, err := ctl.stats.AdminSummary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "")
}

func (ctl *AdminController) AuditLogs(c *gin.Context) {
	entries, err := ctl.admin.ListAuditLogs(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entries, "")
}
