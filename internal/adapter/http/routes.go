package http

import (
	"github.com/gin-gonic/gin"

	"taskhive/internal/adapter/http/handlers"
	"taskhive/internal/adapter/http/middleware"
	"taskhive/internal/core/ports"
)

// RegisterRoutes keeps the paths the web client was built against:
// registration and login are open, everything under /tasks sits behind
// the token gate.
func RegisterRoutes(
	r *gin.Engine,
	tokens ports.TokenIssuer,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
) {
	r.Use(middleware.LanguageMiddleware())

	r.GET("/health", healthHandler.CheckHealth)
	r.GET("/health/report", healthHandler.CheckHealthReport)

	users := r.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
	}

	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware(tokens))
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("/add", taskHandler.AddTask)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
		tasks.POST("/update/:id", taskHandler.UpdateTask)
	}
}
