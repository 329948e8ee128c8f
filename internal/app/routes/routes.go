// Package routes wires every endpoint to its controller and guards. Having
// the whole surface in one table keeps the authorization picture reviewable:
// the program and user mutation routes deliberately carry no role guard
// beyond authentication.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internlink/internlink/internal/app/controllers"
	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/middleware"
)

// Controllers bundles every controller the router needs.
type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Student    *controllers.StudentController
	Program    *controllers.ProgramController
	Feedback   *controllers.FeedbackController
	Supervisor *controllers.SupervisorController
	Dashboard  *controllers.DashboardController
}

// Register mounts all routes on the engine.
func Register(router *gin.Engine, ctrl Controllers, authMW *middleware.AuthMiddleware) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "ok"})
	})

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", ctrl.Auth.Register)
		authGroup.POST("/login", ctrl.Auth.Login)
		authGroup.POST("/change-password", authMW.Authenticate(), ctrl.Auth.ChangePassword)
	}

	feedback := api.Group("/feedback", authMW.Authenticate())
	{
		feedback.GET("", ctrl.Feedback.List)
		feedback.POST("", authMW.RequireRoles(models.RoleSupervisor, models.RoleAdmin), ctrl.Feedback.Create)
		feedback.PUT("/:id", authMW.RequireRoles(models.RoleSupervisor, models.RoleAdmin), ctrl.Feedback.Update)
		feedback.DELETE("/:id", authMW.RequireRoles(models.RoleSupervisor, models.RoleAdmin), ctrl.Feedback.Delete)
	}

	students := api.Group("/students", authMW.Authenticate())
	{
		students.GET("", authMW.RequireRoles(models.RoleAdmin), ctrl.Student.List)
		students.GET("/me", authMW.RequireRoles(models.RoleStudent), ctrl.Student.GetOwn)
		students.POST("", authMW.RequireRoles(models.RoleAdmin), ctrl.Student.Create)
		students.DELETE("/bulk", authMW.RequireRoles(models.RoleAdmin), ctrl.Student.DeleteBulk)
		students.PUT("/:id", authMW.RequireRoles(models.RoleAdmin), ctrl.Student.Update)
		students.DELETE("/:id", authMW.RequireRoles(models.RoleAdmin), ctrl.Student.Delete)
	}

	// Listing and CSV import are role-gated; the plain mutations are open to
	// any authenticated caller. That asymmetry is inherited behavior, kept
	// visible here rather than silently tightened.
	programs := api.Group("/internship_programs", authMW.Authenticate())
	{
		programs.GET("", authMW.RequireRoles(models.RoleAdmin, models.RoleSupervisor), ctrl.Program.List)
		programs.POST("", ctrl.Program.Create)
		programs.POST("/bulk", ctrl.Program.Create)
		programs.POST("/import", authMW.RequireRoles(models.RoleAdmin), ctrl.Program.ImportCSV)
		programs.PUT("/bulk", ctrl.Program.UpdateBulk)
		programs.PUT("/:id", ctrl.Program.Update)
		programs.DELETE("/bulk", ctrl.Program.DeleteBulk)
		programs.DELETE("/:id", ctrl.Program.Delete)
	}

	// User mutations are likewise open to any authenticated caller.
	users := api.Group("/users", authMW.Authenticate())
	{
		users.GET("", ctrl.User.List)
		users.POST("", ctrl.User.Create)
		users.GET("/:id", ctrl.User.Get)
		users.PUT("/:id", ctrl.User.Update)
		users.DELETE("/:id", ctrl.User.Delete)
	}

	supervisor := api.Group("/supervisor", authMW.Authenticate())
	{
		supervisor.GET("/students", authMW.RequireRoles(models.RoleSupervisor), ctrl.Supervisor.ListStudents)
	}

	dashboard := router.Group("/dashboard", authMW.Authenticate())
	{
		dashboard.GET("/admin/overview", authMW.RequireRoles(models.RoleAdmin), ctrl.Dashboard.Overview)
	}
}
