package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/iftu-lms-api/internal/service"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
	"github.com/noah-isme/iftu-lms-api/pkg/response"
)

// AdminHandler exposes whole-store maintenance.
type AdminHandler struct {
	service *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{service: svc}
}

// Reset godoc
// @Summary Reset data
// @Description Discards every stored record and restores the bundled dataset.
// @Tags Admin
// @Success 204
// @Router /admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context(), actorID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Backup godoc
// @Summary Download the stored document
// @Tags Admin
// @Produce json
// @Success 200 {file} file
// @Router /admin/backup [get]
func (h *AdminHandler) Backup(c *gin.Context) {
	payload, err := json.MarshalIndent(h.service.Snapshot(c.Request.Context()), "", "  ")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to encode backup"))
		return
	}
	name := "iftu_lms_backup_" + time.Now().UTC().Format("20060102T150405") + ".json"
	response.Attachment(c, name, "application/json", payload)
}
