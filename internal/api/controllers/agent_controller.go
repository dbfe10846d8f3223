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

type AgentController struct {
	accounts services.AccountServiceInterface
	policies services.PolicyServiceInterface
	claims   services.ClaimServiceInterface
	stats    services.StatsServiceInterface
}

func NewAgentController(
	accounts services.AccountServiceInterface,
	policies services.PolicyServiceInterface,
	claims services.ClaimServiceInterface,
	stats services.StatsServiceInterface,
) *AgentController {
	return &AgentController{
		accounts: accounts,
		policies: policies,
		claims:   claims,
		stats:    stats,
	}
}

// ListClaims returns all claims of the agent's assigned customers.
func (ctl *AgentController) ListClaims(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	claims, err := ctl.claims.ListForAgent(c.Request.Context(), actor.ID, false)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, claims, "")
}

// ListPendingClaims is the agent's review queue.
func (ctl *AgentController) ListPendingClaims(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	claims, err := ctl.claims.ListForAgent(c.Request.Context(), actor.ID, true)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, claims, "")
}

func (ctl *AgentController) Profile(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	user, err := ctl.accounts.GetProfile(c.Request.Context(), actor.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "")
}

func (ctl *AgentController) GetClaim(c *gin.Context) {
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

func (ctl *AgentController) ReviewClaim(c *gin.Context) {
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

func (ctl *AgentController) ListCustomers(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	customers, err := ctl.accounts.ListCustomersForAgent(c.Request.Context(), actor.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, customers, "")
}

func (ctl *AgentController) CustomerPolicies(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	resp, err := ctl.policies.CustomerPoliciesForAgent(c.Request.Context(), actor.ID, customerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

func (ctl *AgentController) CustomerClaims(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	resp, err := ctl.claims.CustomerClaimsForAgent(c.Request.Context(), actor.ID, customerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

func (ctl *AgentController) Stats(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	stats, err := ctl.stats.AgentStats(c.Request.Context(), actor.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "")
}

func (ctl *AgentController) UpdateProfile(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

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
