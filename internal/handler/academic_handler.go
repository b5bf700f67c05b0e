package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/iftu-lms-api/internal/dto"
	"github.com/noah-isme/iftu-lms-api/internal/models"
	"github.com/noah-isme/iftu-lms-api/internal/service"
	"github.com/noah-isme/iftu-lms-api/pkg/response"
)

// AcademicHandler exposes academic history, transcripts and grade sheets.
type AcademicHandler struct {
	academic *service.AcademicService
	users    *service.UserService
	exports  *service.ExportService
}

func NewAcademicHandler(academic *service.AcademicService, users *service.UserService, exports *service.ExportService) *AcademicHandler {
	return &AcademicHandler{academic: academic, users: users, exports: exports}
}

// EnsureHistory godoc
// @Summary Ensure academic history
// @Description Returns the student's academic record, creating an empty one on first access.
// @Tags Academics
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/history [post]
func (h *AcademicHandler) EnsureHistory(c *gin.Context) {
	ctx := c.Request.Context()
	student, err := h.users.FindStudent(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	rec, err := h.academic.EnsureStudentHistory(ctx, student.ID, student.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rec)
}

// Transcript godoc
// @Summary Student transcript
// @Description Grade 9 to 12 transcript. The id may also be a national id. format=csv|pdf downloads it.
// @Tags Academics
// @Param id path string true "Student ID or national ID"
// @Param format query string false "csv or pdf"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/transcript [get]
func (h *AcademicHandler) Transcript(c *gin.Context) {
	format, export, err := exportFormat(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	transcript, err := h.academic.Transcript(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !export {
		response.JSON(c, http.StatusOK, transcript)
		return
	}

	file, err := h.exports.Transcript(ctx, transcript, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	sendFile(c, file)
}

// Gradebook godoc
// @Summary Class grade sheet
// @Tags Academics
// @Param grade query string true "Grade or level"
// @Param subject query string true "Subject"
// @Success 200 {object} response.Envelope
// @Router /gradebook [get]
func (h *AcademicHandler) Gradebook(c *gin.Context) {
	book, err := h.academic.Gradebook(c.Request.Context(), models.GradeLevel(c.Query("grade")), c.Query("subject"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, book)
}

// SaveGradebook godoc
// @Summary Save grade sheet scores
// @Description Scores are clamped to 0..100.
// @Tags Academics
// @Accept json
// @Param payload body dto.GradebookUpdate true "Scores"
// @Success 204
// @Failure 400 {object} response.Envelope
// @Router /gradebook [put]
func (h *AcademicHandler) SaveGradebook(c *gin.Context) {
	var update dto.GradebookUpdate
	if !bindJSON(c, &update) {
		return
	}
	if err := h.academic.SaveGradebook(c.Request.Context(), update); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
