package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/iftu-lms-api/internal/dto"
	"github.com/noah-isme/iftu-lms-api/internal/models"
	"github.com/noah-isme/iftu-lms-api/internal/service"
	"github.com/noah-isme/iftu-lms-api/pkg/response"
)

// PaymentHandler exposes the fee ledger.
type PaymentHandler struct {
	service *service.PaymentService
	exports *service.ExportService
}

func NewPaymentHandler(svc *service.PaymentService, exports *service.ExportService) *PaymentHandler {
	return &PaymentHandler{service: svc, exports: exports}
}

// scopedStudentID pins students to their own ledger; staff may pick any
// student or none for the whole ledger.
func scopedStudentID(c *gin.Context) string {
	if claims := claimsFromContext(c); claims != nil && claims.Role == models.RoleStudent {
		return claims.UserID
	}
	return c.Query("studentId")
}

// List godoc
// @Summary List transactions
// @Tags Payments
// @Param studentId query string false "Student ID (ignored for students)"
// @Success 200 {object} response.Envelope
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	txs := h.service.List(c.Request.Context(), scopedStudentID(c))
	response.List(c, txs, len(txs))
}

// Get godoc
// @Summary Get transaction
// @Tags Payments
// @Param id path string true "Transaction ID"
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	tx, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tx)
}

// Create godoc
// @Summary Record transaction
// @Tags Payments
// @Param payload body models.PaymentTransaction true "Transaction"
// @Success 201 {object} response.Envelope
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var tx models.PaymentTransaction
	if !bindJSON(c, &tx) {
		return
	}
	created, err := h.service.Create(c.Request.Context(), tx)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update godoc
// @Summary Save transaction
// @Tags Payments
// @Param id path string true "Transaction ID"
// @Param payload body models.PaymentTransaction true "Transaction"
// @Router /payments/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	var tx models.PaymentTransaction
	if !bindJSON(c, &tx) {
		return
	}
	saved, err := h.service.Save(c.Request.Context(), c.Param("id"), tx)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved)
}

// Delete godoc
// @Summary Delete transaction
// @Tags Payments
// @Param id path string true "Transaction ID"
// @Router /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Pay godoc
// @Summary Pay fees
// @Description Records a completed Telebirr or CBE credit. Students always pay into their own ledger.
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body dto.PaymentRequest true "Payment"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /payments/pay [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	if claims := claimsFromContext(c); claims != nil && claims.Role == models.RoleStudent {
		req.StudentID = claims.UserID
	}
	tx, err := h.service.Pay(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tx)
}

// Balance godoc
// @Summary Outstanding balance
// @Description Debits of any status minus completed credits, floored at zero.
// @Tags Payments
// @Param studentId query string false "Student ID (ignored for students)"
// @Success 200 {object} response.Envelope
// @Router /payments/balance [get]
func (h *PaymentHandler) Balance(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Balance(c.Request.Context(), scopedStudentID(c)))
}

// Statement godoc
// @Summary Download fee statement
// @Tags Payments
// @Produce octet-stream
// @Param studentId query string false "Student ID (ignored for students)"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /payments/statement [get]
func (h *PaymentHandler) Statement(c *gin.Context) {
	format, export, err := exportFormat(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !export {
		format = service.FormatCSV
	}

	ctx := c.Request.Context()
	studentID := scopedStudentID(c)
	txs := h.service.List(ctx, studentID)
	balance := service.ComputeBalance(txs)
	balance.StudentID = studentID

	file, err := h.exports.Statement(ctx, txs, balance, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	sendFile(c, file)
}
