package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	"github.com/noah-isme/iftu-lms-api/internal/service"
	"github.com/noah-isme/iftu-lms-api/pkg/response"
)

// SchoolHandler exposes campuses.
type SchoolHandler struct {
	service *service.SchoolService
}

func NewSchoolHandler(svc *service.SchoolService) *SchoolHandler {
	return &SchoolHandler{service: svc}
}

// List godoc
// @Summary List schools
// @Tags Schools
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schools [get]
func (h *SchoolHandler) List(c *gin.Context) {
	schools := h.service.List(c.Request.Context())
	response.List(c, schools, len(schools))
}

// @Summary Get school
// @Tags Schools
// @Param id path string true "School ID"
// @Router /schools/{id} [get]
func (h *SchoolHandler) Get(c *gin.Context) {
	school, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, school)
}

// @Summary Create school
// @Tags Schools
// @Param payload body models.School true "School"
// @Router /schools [post]
func (h *SchoolHandler) Create(c *gin.Context) {
	var school models.School
	if !bindJSON(c, &school) {
		return
	}
	created, err := h.service.Create(c.Request.Context(), school)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// @Summary Save school
// @Tags Schools
// @Param id path string true "School ID"
// @Param payload body models.School true "School"
// @Router /schools/{id} [put]
func (h *SchoolHandler) Update(c *gin.Context) {
	var school models.School
	if !bindJSON(c, &school) {
		return
	}
	saved, err := h.service.Save(c.Request.Context(), c.Param("id"), school)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved)
}

// @Summary Delete school
// @Tags Schools
// @Param id path string true "School ID"
// @Router /schools/{id} [delete]
func (h *SchoolHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
