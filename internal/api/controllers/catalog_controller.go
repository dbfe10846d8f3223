package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"polisure/internal/services"
	"polisure/pkg/utils"
)

// CatalogController serves the public, unauthenticated catalog surface.
type CatalogController struct {
	catalog services.CatalogServiceInterface
}

func NewCatalogController(catalog services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalog: catalog}
}

func (ctl *CatalogController) ListPolicies(c *gin.Context) {
	products, err := ctl.catalog.ListProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, products, "")
}

func (ctl *CatalogController) GetPolicy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid policy id")
		return
	}

	product, err := ctl.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, product, "")
}
