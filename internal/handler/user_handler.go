package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	"github.com/noah-isme/iftu-lms-api/internal/service"
	"github.com/noah-isme/iftu-lms-api/pkg/response"
)

// UserHandler handles user CRUD endpoints.
type UserHandler struct {
	service *service.UserService
	exports *service.ExportService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc *service.UserService, exports *service.ExportService) *UserHandler {
	return &UserHandler{service: svc, exports: exports}
}

// List godoc
// @Summary List users
// @Description List users filtered by role, status and grade. format=csv|pdf downloads a roster.
// @Tags Users
// @Produce json
// @Param role query string false "Admin, Teacher or Student"
// @Param status query string false "Active or Inactive"
// @Param grade query string false "Grade 9..12 or Level 1..4"
// @Param format query string false "csv or pdf"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	filter := service.UserFilter{
		Role:   models.UserRole(c.Query("role")),
		Status: models.UserStatus(c.Query("status")),
		Grade:  models.GradeLevel(c.Query("grade")),
	}
	users := h.service.List(c.Request.Context(), filter)

	format, export, err := exportFormat(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if export {
		file, err := h.exports.Roster(c.Request.Context(), users, format)
		if err != nil {
			response.Error(c, err)
			return
		}
		sendFile(c, file)
		return
	}

	response.List(c, userRecords(users), len(users))
}

// Get godoc
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, models.RecordOf(user))
}

// Create godoc
// @Summary Create user
// @Description Registers a user. New students are billed the annual tuition.
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body models.UserRecord true "User"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var rec models.UserRecord
	if !bindJSON(c, &rec) {
		return
	}

	user, err := h.service.Create(c.Request.Context(), rec)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, models.RecordOf(user))
}

// Update godoc
// @Summary Save user
// @Description Upserts the user stored under id. The role cannot change.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body models.UserRecord true "User"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var rec models.UserRecord
	if !bindJSON(c, &rec) {
		return
	}

	user, err := h.service.Save(c.Request.Context(), c.Param("id"), rec)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, models.RecordOf(user))
}

// Delete godoc
// @Summary Delete user
// @Tags Users
// @Param id path string true "User ID"
// @Success 204
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
