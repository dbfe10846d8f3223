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

type CustomerController struct {
	accounts services.AccountServiceInterface
	policies services.PolicyServiceInterface
	claims   services.ClaimServiceInterface
	stats    services.StatsServiceInterface
}

func NewCustomerController(
	accounts services.AccountServiceInterface,
	policies services.PolicyServiceInterface,
	claims services.ClaimServiceInterface,
	stats services.StatsServiceInterface,
) *CustomerController {
	return &CustomerController{
		accounts: accounts,
		policies: policies,
		claims:   claims,
		stats:    stats,
	}
}

func (ctl *CustomerController) MyAgent(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	resp, err := ctl.accounts.MyAgent(c.Request.Context(), actor.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

func (ctl *CustomerController) PurchasePolicy(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid policy id")
		return
	}
	var req request_models.PurchasePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	policy, err := ctl.policies.Purchase(c.Request.Context(), actor.ID, productID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, policy, "Policy purchased")
}

func (ctl *CustomerController) MyPolicies(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	policies, err := ctl.policies.ListMyPolicies(c.Request.Context(), actor.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, policies, "")
}

func (ctl *CustomerController) CancelPolicy(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	policyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid policy id")
		return
	}

	policy, err := ctl.policies.CancelPolicy(c.Request.Context(), actor.ID, policyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, policy, "Policy cancelled")
}

func (ctl *CustomerController) RecordPayment(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req request_models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	payment, err := ctl.policies.RecordPayment(c.Request.Context(), actor.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, payment, "Payment recorded")
}

func (ctl *CustomerController) MyPayments(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	payments, err := ctl.policies.ListMyPayments(c.Request.Context(), actor.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, payments, "")
}

func (ctl *CustomerController) SubmitClaim(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req request_models.SubmitClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	claim, err := ctl.claims.Submit(c.Request.Context(), actor.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, claim, "Claim submitted")
}

func (ctl *CustomerController) SubmitClaimWithoutPolicy(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req request_models.SubmitClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	claim, err := ctl.claims.SubmitWithoutPolicy(c.Request.Context(), actor.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, claim, "Claim submitted")
}

func (ctl *CustomerController) MyClaims(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	claims, err := ctl.claims.ListMyClaims(c.Request.Context(), actor.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, claims, "")
}

func (ctl *CustomerController) GetClaim(c *gin.Context) {
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

func (ctl *CustomerController) Stats(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	stats, err := ctl.stats.CustomerStats(c.Request.Context(), actor.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "")
}
