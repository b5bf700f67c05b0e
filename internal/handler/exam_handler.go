package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/iftu-lms-api/internal/dto"
	"github.com/noah-isme/iftu-lms-api/internal/models"
	"github.com/noah-isme/iftu-lms-api/internal/service"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
	"github.com/noah-isme/iftu-lms-api/pkg/response"
)

// ExamHandler exposes exams and answer evaluation.
type ExamHandler struct {
	service *service.ExamService
}

func NewExamHandler(svc *service.ExamService) *ExamHandler {
	return &ExamHandler{service: svc}
}

// List godoc
// @Summary List exams
// @Tags Exams
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /exams [get]
func (h *ExamHandler) List(c *gin.Context) {
	exams := h.service.List(c.Request.Context())
	response.List(c, exams, len(exams))
}

// Get godoc
// @Summary Get exam
// @Tags Exams
// @Param id path string true "Exam ID"
// @Success 200 {object} response.Envelope
// @Router /exams/{id} [get]
func (h *ExamHandler) Get(c *gin.Context) {
	exam, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exam)
}

// Create godoc
// @Summary Schedule exam
// @Description The caller becomes the exam's teacher. Duration is derived from the question count.
// @Tags Exams
// @Accept json
// @Produce json
// @Param minutesPerQuestion query number false "Minutes allotted per question (default 2)"
// @Param payload body models.Exam true "Exam"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /exams [post]
func (h *ExamHandler) Create(c *gin.Context) {
	var exam models.Exam
	if !bindJSON(c, &exam) {
		return
	}
	minutes := float64(service.DefaultMinutesPerQuestion)
	if raw := c.Query("minutesPerQuestion"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "minutesPerQuestion must be a positive number"))
			return
		}
		minutes = v
	}

	created, err := h.service.Create(c.Request.Context(), exam, actorID(c), minutes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update godoc
// @Summary Save exam
// @Tags Exams
// @Param id path string true "Exam ID"
// @Param payload body models.Exam true "Exam"
// @Success 200 {object} response.Envelope
// @Router /exams/{id} [put]
func (h *ExamHandler) Update(c *gin.Context) {
	var exam models.Exam
	if !bindJSON(c, &exam) {
		return
	}
	saved, err := h.service.Save(c.Request.Context(), c.Param("id"), exam)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved)
}

// Delete godoc
// @Summary Delete exam
// @Tags Exams
// @Param id path string true "Exam ID"
// @Success 204
// @Router /exams/{id} [delete]
func (h *ExamHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Evaluate godoc
// @Summary Score exam answers
// @Tags Exams
// @Accept json
// @Produce json
// @Param id path string true "Exam ID"
// @Param payload body dto.ExamSubmission true "Selected option index per question"
// @Success 200 {object} response.Envelope
// @Router /exams/{id}/evaluate [post]
func (h *ExamHandler) Evaluate(c *gin.Context) {
	var submission dto.ExamSubmission
	if !bindJSON(c, &submission) {
		return
	}
	result, err := h.service.Evaluate(c.Request.Context(), c.Param("id"), submission)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
