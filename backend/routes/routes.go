package routes

import (
	"path/filepath"

	"coursehub/backend/config"
	"coursehub/backend/controllers"
	"coursehub/backend/media"
	"coursehub/backend/middleware"
	"coursehub/backend/payment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, store media.Store, gateway payment.Gateway) {
	api := app.Group("/api/v1", middleware.Authenticate(db, cfg))

	// Middleware
	requireAuth := middleware.RequireAuth()
	requireTeacher := middleware.RequireTeacher()
	requireAdmin := middleware.RequireAdmin()

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	api.Post("/register", authController.Register)
	api.Post("/login", authController.Login)

	// User routes
	userController := controllers.NewUserController(db, cfg, gateway)
	api.Get("/me", requireAuth, userController.MyProfile)
	api.Get("/mycourse", requireAuth, userController.MyCourses)
	api.Post("/checkout", requireAuth, userController.Checkout)
	api.Post("/verification/:id", requireAuth, userController.PaymentVerification)
	api.Get("/users", requireAuth, requireAdmin, userController.GetAllUsers)

	// Courses routes
	coursesController := controllers.NewCoursesController(db, cfg, store)
	api.Get("/courses", coursesController.GetAllCourses)
	api.Get("/courses/admin", requireAuth, requireTeacher, coursesController.GetTeacherCourses)
	api.Get("/course/:id", requireAuth, coursesController.GetSingleCourse)
	api.Get("/course/lectures/:id", requireAuth, coursesController.GetCourseLectures)
	api.Post("/course/lectures/add/:id", requireAuth, requireTeacher, coursesController.AddLecture)
	api.Post("/new/course", requireAuth, requireTeacher, coursesController.CreateCourse)
	api.Delete("/course/delete/:id", requireAuth, requireTeacher, coursesController.DeleteCourse)
	api.Delete("/course/delete/admin/:id", requireAuth, requireAdmin, coursesController.DeleteCourseByAdmin)
	api.Delete("/course/lecture", requireAuth, requireTeacher, coursesController.DeleteLecture)

	// Static frontend
	app.Static("/", cfg.FrontendDir)
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.FrontendDir, "index.html"))
	})
}
