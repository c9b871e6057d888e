package domain

// Workout is one logged training session for a client. In the spreadsheet it
// is denormalized into one row per set; the repository layer regroups those
// rows into this shape on read.
type Workout struct {
	WorkoutID string     `json:"workoutId"`
	ClientID  string     `json:"clientId"`
	Date      string     `json:"date"` // YYYY-MM-DD
	Exercises []Exercise `json:"exercises"`
	Notes     string     `json:"notes"`
	CreatedAt string     `json:"createdAt"` // RFC 3339 timestamp
}

// Exercise is an ordered group of sets within a workout. It has no identity of
// its own; the stored (canonical) name is what distinguishes it.
type Exercise struct {
	ExerciseName string `json:"exerciseName"`
	Sets         []Set  `json:"sets"`
}

// Set is a single performed set. Notes is optional; when empty, the row for
// this set stores the workout-level notes instead.
type Set struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
	Notes  string  `json:"notes,omitempty"`
}

// WorkoutPatch carries a partial workout update. Nil fields keep the stored
// value. WorkoutID and CreatedAt are immutable and cannot appear here.
type WorkoutPatch struct {
	ClientID  *string     `json:"clientId"`
	Date      *string     `json:"date"`
	Exercises *[]Exercise `json:"exercises"`
	Notes     *string     `json:"notes"`
}

// SetCount returns the number of spreadsheet rows this workout maps to.
func (w Workout) SetCount() int {
	n := 0
	for _, ex := range w.Exercises {
		n += len(ex.Sets)
	}
	return n
}
