package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warbak/trainer-app/internal/service"
	"warbak/trainer-app/internal/sheets"
)

// SetupRoutes wires every endpoint onto the router. /ping and /api/v1/auth/*
// are open; everything else requires a trainer token.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	clientService service.ClientService,
	workoutService service.WorkoutService,
	defaultsService service.DefaultsService,
	store sheets.Store,
) {
	authHandler := NewAuthHandler(authService)
	clientHandler := NewClientHandler(clientService, workoutService, defaultsService)
	workoutHandler := NewWorkoutHandler(workoutService)
	debugHandler := NewDebugHandler(store)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		protected.GET("/me", func(c *gin.Context) {
			trainerID, err := trainerIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get trainer ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"trainerId": trainerID})
		})

		clientGroup := protected.Group("/clients")
		{
			clientGroup.GET("", clientHandler.GetClients)
			clientGroup.POST("", clientHandler.CreateClient)
			clientGroup.PUT("/:id", clientHandler.UpdateClient)
			clientGroup.DELETE("/:id", clientHandler.DeleteClient)
			clientGroup.GET("/:id/workouts", clientHandler.GetClientWorkouts)
			clientGroup.GET("/:id/exercise-defaults", clientHandler.GetExerciseDefaults)
		}

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		protected.GET("/debug/sheets", debugHandler.GetSheets)
	}
}
