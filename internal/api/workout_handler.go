package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"warbak/trainer-app/internal/domain"
	"warbak/trainer-app/internal/service"
)

// WorkoutHandler serves the workout endpoints.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

type CreateWorkoutRequest struct {
	ClientID  string            `json:"clientId"`
	Date      string            `json:"date"`
	Exercises []domain.Exercise `json:"exercises"`
	Notes     string            `json:"notes"`
}

type UpdateWorkoutRequest struct {
	ClientID  *string            `json:"clientId"`
	Date      *string            `json:"date"`
	Exercises *[]domain.Exercise `json:"exercises"`
	Notes     *string            `json:"notes"`
}

// CreateWorkout handles POST /api/v1/workouts.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validateWorkoutFields(&req.ClientID, &req.Date, &req.Exercises); len(errs) > 0 {
		abortWithError(c, http.StatusBadRequest, strings.Join(errs, "; "))
		return
	}

	created, err := h.workoutService.Create(c.Request.Context(), domain.Workout{
		ClientID:  req.ClientID,
		Date:      strings.TrimSpace(req.Date),
		Exercises: req.Exercises,
		Notes:     req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateWorkout handles PUT /api/v1/workouts/:id. Only the fields present in
// the body are validated and changed.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validateWorkoutPatch(req); len(errs) > 0 {
		abortWithError(c, http.StatusBadRequest, strings.Join(errs, "; "))
		return
	}

	updated, err := h.workoutService.Update(c.Request.Context(), c.Param("id"), domain.WorkoutPatch{
		ClientID:  req.ClientID,
		Date:      req.Date,
		Exercises: req.Exercises,
		Notes:     req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteWorkout handles DELETE /api/v1/workouts/:id.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.workoutService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
