package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	"github.com/noah-isme/iftu-lms-api/internal/service"
	"github.com/noah-isme/iftu-lms-api/pkg/response"
)

type BrandingHandler struct {
	service *service.BrandingService
}

func NewBrandingHandler(svc *service.BrandingService) *BrandingHandler {
	return &BrandingHandler{service: svc}
}

// Get godoc
// @Summary Institutional branding
// @Tags Branding
// @Success 200 {object} response.Envelope
// @Router /branding [get]
func (h *BrandingHandler) Get(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Get(c.Request.Context()))
}

// Update godoc
// @Summary Save institutional branding
// @Tags Branding
// @Param payload body models.InstitutionalBranding true "Branding"
// @Success 200 {object} response.Envelope
// @Router /branding [put]
func (h *BrandingHandler) Update(c *gin.Context) {
	var branding models.InstitutionalBranding
	if !bindJSON(c, &branding) {
		return
	}
	saved, err := h.service.Save(c.Request.Context(), branding)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved)
}
