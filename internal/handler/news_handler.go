package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	"github.com/noah-isme/iftu-lms-api/internal/service"
	"github.com/noah-isme/iftu-lms-api/pkg/response"
)

// NewsHandler exposes news posts and event registration.
type NewsHandler struct {
	service *service.NewsService
}

func NewNewsHandler(svc *service.NewsService) *NewsHandler {
	return &NewsHandler{service: svc}
}

// List godoc
// @Summary List news posts
// @Tags News
// @Success 200 {object} response.Envelope
// @Router /news [get]
func (h *NewsHandler) List(c *gin.Context) {
	posts := h.service.List(c.Request.Context())
	response.List(c, posts, len(posts))
}

// Get godoc
// @Summary Get news post
// @Tags News
// @Param id path string true "Post ID"
// @Router /news/{id} [get]
func (h *NewsHandler) Get(c *gin.Context) {
	post, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, post)
}

// Create godoc
// @Summary Publish news post
// @Tags News
// @Param payload body models.NewsPost true "Post"
// @Success 201 {object} response.Envelope
// @Router /news [post]
func (h *NewsHandler) Create(c *gin.Context) {
	var post models.NewsPost
	if !bindJSON(c, &post) {
		return
	}
	created, err := h.service.Create(c.Request.Context(), post, actorName(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update godoc
// @Summary Save news post
// @Tags News
// @Param id path string true "Post ID"
// @Param payload body models.NewsPost true "Post"
// @Router /news/{id} [put]
func (h *NewsHandler) Update(c *gin.Context) {
	var post models.NewsPost
	if !bindJSON(c, &post) {
		return
	}
	saved, err := h.service.Save(c.Request.Context(), c.Param("id"), post)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved)
}

// Delete godoc
// @Summary Delete news post
// @Tags News
// @Param id path string true "Post ID"
// @Router /news/{id} [delete]
func (h *NewsHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Register godoc
// @Summary Register for an event post
// @Tags News
// @Param id path string true "Post ID"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /news/{id}/register [post]
func (h *NewsHandler) Register(c *gin.Context) {
	post, err := h.service.Register(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, post)
}
