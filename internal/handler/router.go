package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/iftu-lms-api/internal/middleware"
	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// Handlers groups every HTTP handler mounted under the API prefix.
type Handlers struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Courses       *CourseHandler
	Schools       *SchoolHandler
	Exams         *ExamHandler
	Materials     *MaterialHandler
	News          *NewsHandler
	Announcements *AnnouncementHandler
	Payments      *PaymentHandler
	Academics     *AcademicHandler
	Reports       *ReportHandler
	Branding      *BrandingHandler
	Admin         *AdminHandler
	Metrics       *MetricsHandler
}

// RegisterRoutes mounts the API on api. Landing-page content (branding,
// catalogue, news, stats) is public; everything else needs a token and
// writes are gated by role.
func RegisterRoutes(api *gin.RouterGroup, h Handlers, auth middleware.TokenValidator) {
	authn := middleware.JWT(auth)
	admin := middleware.RequireRoles(models.RoleAdmin)
	staff := middleware.RequireStaff()
	staffOrSelf := middleware.RBAC(string(models.RoleAdmin), string(models.RoleTeacher), middleware.Self)

	api.POST("/auth/login", h.Auth.Login)
	api.GET("/auth/me", authn, h.Auth.Me)

	api.GET("/branding", h.Branding.Get)
	api.PUT("/branding", authn, admin, h.Branding.Update)

	api.GET("/stats", h.Reports.Stats)
	api.GET("/reports/enrollment", authn, admin, h.Reports.Enrollment)

	users := api.Group("/users", authn)
	users.GET("", staff, h.Users.List)
	users.GET("/:id", staffOrSelf, h.Users.Get)
	users.POST("", admin, h.Users.Create)
	users.PUT("/:id", admin, h.Users.Update)
	users.DELETE("/:id", admin, h.Users.Delete)

	students := api.Group("/students/:id", authn)
	students.POST("/history", staff, h.Academics.EnsureHistory)
	students.GET("/transcript", staffOrSelf, h.Academics.Transcript)
	students.GET("/certificate", staffOrSelf, h.Reports.Certificate)

	gradebook := api.Group("/gradebook", authn, staff)
	gradebook.GET("", h.Academics.Gradebook)
	gradebook.PUT("", h.Academics.SaveGradebook)

	courses := api.Group("/courses")
	courses.GET("", h.Courses.List)
	courses.GET("/:id", h.Courses.Get)
	courses.POST("", authn, staff, h.Courses.Create)
	courses.PUT("/:id", authn, staff, h.Courses.Update)
	courses.DELETE("/:id", authn, admin, h.Courses.Delete)

	schools := api.Group("/schools")
	schools.GET("", h.Schools.List)
	schools.GET("/:id", h.Schools.Get)
	schools.POST("", authn, admin, h.Schools.Create)
	schools.PUT("/:id", authn, admin, h.Schools.Update)
	schools.DELETE("/:id", authn, admin, h.Schools.Delete)

	exams := api.Group("/exams", authn)
	exams.GET("", h.Exams.List)
	exams.GET("/:id", h.Exams.Get)
	exams.POST("/:id/evaluate", h.Exams.Evaluate)
	exams.POST("", staff, h.Exams.Create)
	exams.PUT("/:id", staff, h.Exams.Update)
	exams.DELETE("/:id", staff, h.Exams.Delete)

	materials := api.Group("/materials", authn)
	materials.GET("", h.Materials.List)
	materials.GET("/:id", h.Materials.Get)
	materials.POST("", staff, h.Materials.Create)
	materials.PUT("/:id", staff, h.Materials.Update)
	materials.DELETE("/:id", staff, h.Materials.Delete)

	news := api.Group("/news")
	news.GET("", h.News.List)
	news.GET("/:id", h.News.Get)
	news.POST("/:id/register", authn, h.News.Register)
	news.POST("", authn, admin, h.News.Create)
	news.PUT("/:id", authn, admin, h.News.Update)
	news.DELETE("/:id", authn, admin, h.News.Delete)

	announcements := api.Group("/announcements")
	announcements.GET("", h.Announcements.List)
	announcements.GET("/:id", h.Announcements.Get)
	announcements.POST("", authn, admin, h.Announcements.Create)
	announcements.PUT("/:id", authn, admin, h.Announcements.Update)
	announcements.DELETE("/:id", authn, admin, h.Announcements.Delete)

	payments := api.Group("/payments", authn)
	payments.GET("", h.Payments.List)
	payments.GET("/balance", h.Payments.Balance)
	payments.GET("/statement", h.Payments.Statement)
	payments.POST("/pay", h.Payments.Pay)
	payments.GET("/:id", admin, h.Payments.Get)
	payments.POST("", admin, h.Payments.Create)
	payments.PUT("/:id", admin, h.Payments.Update)
	payments.DELETE("/:id", admin, h.Payments.Delete)

	adminGroup := api.Group("/admin", authn, admin)
	adminGroup.POST("/reset", h.Admin.Reset)
	adminGroup.GET("/backup", h.Admin.Backup)
	adminGroup.GET("/metrics", h.Metrics.Summary)
}

// RegisterProbes mounts liveness, readiness and Prometheus endpoints at the root.
func RegisterProbes(r gin.IRoutes, h *MetricsHandler, exposeMetrics bool) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
	if exposeMetrics {
		r.GET("/metrics", h.Prometheus)
	}
}
