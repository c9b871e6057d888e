package api

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"warbak/trainer-app/internal/domain"
)

// Request validation mirrors what the web client enforces, so the API gives
// the same answers whether or not the form in front of it behaved.

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// validateClientFields checks name/email/phone rules. Name is required and
// at least 2 characters; email and phone are only checked when non-empty.
func validateClientFields(name, email, phone *string) []string {
	var errs []string

	switch {
	case name == nil || strings.TrimSpace(*name) == "":
		errs = append(errs, "Name is required")
	case len(strings.TrimSpace(*name)) < 2:
		errs = append(errs, "Name must be at least 2 characters")
	}

	if email != nil && strings.TrimSpace(*email) != "" {
		if !emailPattern.MatchString(strings.TrimSpace(*email)) {
			errs = append(errs, "Invalid email format")
		}
	}

	if phone != nil && strings.TrimSpace(*phone) != "" {
		digits := nonDigitPattern.ReplaceAllString(*phone, "")
		if len(digits) < 7 {
			errs = append(errs, "Phone number must contain at least 7 digits")
		}
	}

	return errs
}

// validateWorkoutFields checks a full workout payload: clientId and a
// parseable date are required, and there must be at least one exercise, each
// named and holding at least one set with reps >= 1 and weight >= 0.
func validateWorkoutFields(clientID, date *string, exercises *[]domain.Exercise) []string {
	var errs []string

	if date == nil || strings.TrimSpace(*date) == "" {
		errs = append(errs, "Date is required")
	} else if !parseableDate(*date) {
		errs = append(errs, "Invalid date format")
	}

	if exercises == nil {
		errs = append(errs, "At least one exercise is required")
	} else {
		errs = append(errs, validateExercises(*exercises)...)
	}

	if clientID == nil || strings.TrimSpace(*clientID) == "" {
		errs = append(errs, "Client ID is required")
	}

	return errs
}

func validateExercises(exercises []domain.Exercise) []string {
	var errs []string
	if len(exercises) == 0 {
		return []string{"At least one exercise is required"}
	}
	for i, ex := range exercises {
		if strings.TrimSpace(ex.ExerciseName) == "" {
			errs = append(errs, fmt.Sprintf("Exercise %d: Exercise name is required", i+1))
		}
		if len(ex.Sets) == 0 {
			errs = append(errs, fmt.Sprintf("Exercise %d: At least one set is required", i+1))
			continue
		}
		for j, set := range ex.Sets {
			if set.Reps < 1 {
				errs = append(errs, fmt.Sprintf("Exercise %d, Set %d: Reps must be at least 1", i+1, j+1))
			}
			if set.Weight < 0 {
				errs = append(errs, fmt.Sprintf("Exercise %d, Set %d: Weight must be 0 or greater", i+1, j+1))
			}
		}
	}
	return errs
}

// validateWorkoutPatch checks only the fields the update supplies.
func validateWorkoutPatch(req UpdateWorkoutRequest) []string {
	var errs []string

	if req.Date != nil {
		if strings.TrimSpace(*req.Date) == "" {
			errs = append(errs, "Date is required")
		} else if !parseableDate(*req.Date) {
			errs = append(errs, "Invalid date format")
		}
	}

	if req.Exercises != nil {
		errs = append(errs, validateExercises(*req.Exercises)...)
	}

	if req.ClientID != nil && strings.TrimSpace(*req.ClientID) == "" {
		errs = append(errs, "Client ID is required")
	}

	return errs
}

func parseableDate(v string) bool {
	v = strings.TrimSpace(v)
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}
