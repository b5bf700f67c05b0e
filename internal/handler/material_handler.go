package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	"github.com/noah-isme/iftu-lms-api/internal/service"
	"github.com/noah-isme/iftu-lms-api/pkg/response"
)

// MaterialHandler exposes learning materials.
type MaterialHandler struct {
	service *service.MaterialService
}

func NewMaterialHandler(svc *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{service: svc}
}

// List godoc
// @Summary List materials
// @Tags Materials
// @Param courseTitle query string false "Only materials of this course"
// @Success 200 {object} response.Envelope
// @Router /materials [get]
func (h *MaterialHandler) List(c *gin.Context) {
	items := h.service.List(c.Request.Context(), c.Query("courseTitle"))
	response.List(c, items, len(items))
}

// @Summary Get material
// @Tags Materials
// @Param id path string true "Material ID"
// @Router /materials/{id} [get]
func (h *MaterialHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Upload material
// @Description Records a material authored by the caller and dated today.
// @Tags Materials
// @Param payload body models.Material true "Material"
// @Success 201 {object} response.Envelope
// @Router /materials [post]
func (h *MaterialHandler) Create(c *gin.Context) {
	var item models.Material
	if !bindJSON(c, &item) {
		return
	}
	created, err := h.service.Create(c.Request.Context(), item, actorName(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// @Summary Save material
// @Tags Materials
// @Param id path string true "Material ID"
// @Param payload body models.Material true "Material"
// @Router /materials/{id} [put]
func (h *MaterialHandler) Update(c *gin.Context) {
	var item models.Material
	if !bindJSON(c, &item) {
		return
	}
	saved, err := h.service.Save(c.Request.Context(), c.Param("id"), item)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved)
}

// @Summary Delete material
// @Tags Materials
// @Param id path string true "Material ID"
// @Router /materials/{id} [delete]
func (h *MaterialHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
