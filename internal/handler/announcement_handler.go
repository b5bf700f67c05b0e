package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	"github.com/noah-isme/iftu-lms-api/internal/service"
	"github.com/noah-isme/iftu-lms-api/pkg/response"
)

type AnnouncementHandler struct {
	service *service.AnnouncementService
}

func NewAnnouncementHandler(svc *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: svc}
}

// @Summary List announcements
// @Tags Announcements
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	items := h.service.List(c.Request.Context())
	response.List(c, items, len(items))
}

// @Summary Get announcement
// @Tags Announcements
// @Param id path string true "Announcement ID"
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// @Summary Create announcement
// @Tags Announcements
// @Param payload body models.Announcement true "Announcement"
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var item models.Announcement
	if !bindJSON(c, &item) {
		return
	}
	created, err := h.service.Create(c.Request.Context(), item)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// @Summary Save announcement
// @Tags Announcements
// @Param id path string true "Announcement ID"
// @Param payload body models.Announcement true "Announcement"
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var item models.Announcement
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

// @Summary Delete announcement
// @Tags Announcements
// @Param id path string true "Announcement ID"
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
