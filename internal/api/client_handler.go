package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"warbak/trainer-app/internal/domain"
	"warbak/trainer-app/internal/service"
)

// ClientHandler serves the client roster endpoints, including the nested
// workout listing and the exercise-defaults suggestion.
type ClientHandler struct {
	clientService   service.ClientService
	workoutService  service.WorkoutService
	defaultsService service.DefaultsService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService, workoutService service.WorkoutService, defaultsService service.DefaultsService) *ClientHandler {
	return &ClientHandler{
		clientService:   clientService,
		workoutService:  workoutService,
		defaultsService: defaultsService,
	}
}

type CreateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

// GetClients handles GET /api/v1/clients.
func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.clientService.GetAll(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// CreateClient handles POST /api/v1/clients.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validateClientFields(&req.Name, &req.Email, &req.Phone); len(errs) > 0 {
		abortWithError(c, http.StatusBadRequest, strings.Join(errs, "; "))
		return
	}

	created, err := h.clientService.Create(c.Request.Context(), domain.Client{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
		Notes: req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateClient handles PUT /api/v1/clients/:id. Only fields present in the
// body change, but the payload is checked with the same rules as on create,
// so every update must carry a valid name.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validateClientFields(req.Name, req.Email, req.Phone); len(errs) > 0 {
		abortWithError(c, http.StatusBadRequest, strings.Join(errs, "; "))
		return
	}

	updated, err := h.clientService.Update(c.Request.Context(), c.Param("id"), domain.ClientPatch{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteClient handles DELETE /api/v1/clients/:id. With
// ?deleteWorkouts=true the client's workout history is removed as well.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	cascade := c.Query("deleteWorkouts") == "true"
	if err := h.clientService.Delete(c.Request.Context(), c.Param("id"), cascade); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetClientWorkouts handles GET /api/v1/clients/:id/workouts.
func (h *ClientHandler) GetClientWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.GetByClientID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// ExerciseDefaultsResponse is the pre-fill suggestion for a new set.
type ExerciseDefaultsResponse struct {
	ExerciseName string           `json:"exerciseName"`
	Reps         int              `json:"reps"`
	Weight       float64          `json:"weight"`
	LastSet      *service.LastSet `json:"lastSet,omitempty"`
}

// GetExerciseDefaults handles
// GET /api/v1/clients/:id/exercise-defaults?exerciseName=...
func (h *ClientHandler) GetExerciseDefaults(c *gin.Context) {
	exerciseName := c.Query("exerciseName")
	if strings.TrimSpace(exerciseName) == "" {
		abortWithError(c, http.StatusBadRequest, "exerciseName query parameter is required")
		return
	}

	clientID := c.Param("id")
	last, err := h.defaultsService.LastSetForExercise(c.Request.Context(), clientID, exerciseName)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	defaults := service.SuggestedDefaults(last)

	c.JSON(http.StatusOK, ExerciseDefaultsResponse{
		ExerciseName: exerciseName,
		Reps:         defaults.Reps,
		Weight:       defaults.Weight,
		LastSet:      last,
	})
}
