package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/iftu-lms-api/internal/middleware"
	"github.com/noah-isme/iftu-lms-api/internal/models"
	"github.com/noah-isme/iftu-lms-api/internal/service"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
	"github.com/noah-isme/iftu-lms-api/pkg/response"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	claims, _ := middleware.CurrentClaims(c)
	return claims
}

func actorID(c *gin.Context) string {
	if claims := claimsFromContext(c); claims != nil {
		return claims.UserID
	}
	return ""
}

func actorName(c *gin.Context) string {
	if claims := claimsFromContext(c); claims != nil {
		return claims.Name
	}
	return ""
}

// bindJSON decodes the request body into dst, writing a validation error on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return false
	}
	return true
}

// exportFormat reads ?format=. ok is false when no export was requested.
func exportFormat(c *gin.Context) (service.ExportFormat, bool, error) {
	raw := c.Query("format")
	if raw == "" || raw == "json" {
		return "", false, nil
	}
	format, err := service.ParseExportFormat(raw)
	return format, true, err
}

func sendFile(c *gin.Context, file *service.ExportFile) {
	response.Attachment(c, file.Filename, file.ContentType, file.Data)
}

func userRecords(users []models.User) []models.UserRecord {
	out := make([]models.UserRecord, 0, len(users))
	for _, u := range users {
		out = append(out, models.RecordOf(u))
	}
	return out
}
