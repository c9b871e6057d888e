package sheetrepo

import (
	"encoding/json"
	"strconv"
	"strings"

	"warbak/trainer-app/internal/domain"
)

// The mapper converts between application records and flat spreadsheet rows.
// All functions here are pure and never fail: malformed cells degrade to
// zero values so a single bad row cannot poison a whole read.

// clientToRow maps a client onto the six fixed Clients columns.
func clientToRow(c domain.Client) []string {
	return []string{c.ClientID, c.Name, c.Email, c.Phone, c.Notes, c.CreatedAt}
}

// rowToClient maps a row back to a client. Rows may be shorter than the
// header width; missing trailing cells become empty strings. A zero-length
// row maps to nil.
func rowToClient(row []string) *domain.Client {
	if len(row) == 0 {
		return nil
	}
	return &domain.Client{
		ClientID:  cell(row, 0),
		Name:      cell(row, 1),
		Email:     cell(row, 2),
		Phone:     cell(row, 3),
		Notes:     cell(row, 4),
		CreatedAt: cell(row, 5),
	}
}

// rowsToClients maps a full sheet read (header at row 0) to clients,
// discarding empty rows and rows without an id.
func rowsToClients(rows [][]string) []domain.Client {
	clients := make([]domain.Client, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		c := rowToClient(row)
		if c == nil || c.ClientID == "" {
			continue
		}
		clients = append(clients, *c)
	}
	return clients
}

// workoutToRows flattens a workout into one row per set, in exercise-then-set
// order. setNumber is the 1-based position of the set within its exercise,
// volume is reps×weight, and a set without notes stores the workout's notes.
// Exercise names are canonicalized at write time. A workout with no sets
// yields no rows.
func workoutToRows(w domain.Workout) [][]string {
	rows := make([][]string, 0, w.SetCount())
	for _, ex := range w.Exercises {
		name := domain.CanonicalExerciseName(ex.ExerciseName)
		for si, set := range ex.Sets {
			notes := set.Notes
			if notes == "" {
				notes = w.Notes
			}
			rows = append(rows, []string{
				w.WorkoutID,
				w.ClientID,
				w.Date,
				name,
				strconv.Itoa(si + 1),
				strconv.Itoa(set.Reps),
				formatNumber(set.Weight),
				formatNumber(float64(set.Reps) * set.Weight),
				notes,
				w.CreatedAt,
			})
		}
	}
	return rows
}

// setRow is one parsed Workouts row: a single set plus the workout-level
// fields stored redundantly beside it.
type setRow struct {
	WorkoutID    string
	ClientID     string
	Date         string
	ExerciseName string
	SetNumber    int
	Reps         int
	Weight       float64
	Volume       float64
	Notes        string
	CreatedAt    string
}

// rowToWorkoutSet parses one Workouts row. Numeric cells that fail to parse
// default to 0, except setNumber which defaults to 1.
func rowToWorkoutSet(row []string) setRow {
	return setRow{
		WorkoutID:    cell(row, 0),
		ClientID:     cell(row, 1),
		Date:         cell(row, 2),
		ExerciseName: cell(row, 3),
		SetNumber:    parseIntDefault(cell(row, 4), 1),
		Reps:         parseIntDefault(cell(row, 5), 0),
		Weight:       parseFloatDefault(cell(row, 6), 0),
		Volume:       parseFloatDefault(cell(row, 7), 0),
		Notes:        cell(row, 8),
		CreatedAt:    cell(row, 9),
	}
}

// rowsToWorkouts regroups a full Workouts sheet read into workout records.
// Rows after the header are grouped by workoutId in order of first
// appearance, then by normalized exercise name in order of first appearance;
// row order becomes set order. Workout-level fields come from the first row
// seen for each workoutId. Rows without a workoutId are discarded.
//
// Rows from the retired single-row format, where the exerciseName column
// held a JSON exercises array, are still understood; an unparseable JSON
// cell degrades to an empty exercise list rather than failing the read.
func rowsToWorkouts(rows [][]string, headerRowIndex int) []domain.Workout {
	if len(rows) <= headerRowIndex+1 {
		return []domain.Workout{}
	}

	order := make([]string, 0)
	groups := make(map[string]*workoutGroup)

	for _, row := range rows[headerRowIndex+1:] {
		id := cell(row, 0)
		if id == "" {
			continue
		}
		g, ok := groups[id]
		if !ok {
			g = newWorkoutGroup(row)
			groups[id] = g
			order = append(order, id)
		}
		g.add(row)
	}

	workouts := make([]domain.Workout, 0, len(order))
	for _, id := range order {
		workouts = append(workouts, groups[id].workout)
	}
	return workouts
}

// workoutGroup accumulates the rows sharing one workoutId.
type workoutGroup struct {
	workout domain.Workout
	// exercise index by normalized name, so rows with historic case drift
	// still land in the same exercise.
	byName map[string]int
}

func newWorkoutGroup(first []string) *workoutGroup {
	head := rowToWorkoutSet(first)
	return &workoutGroup{
		workout: domain.Workout{
			WorkoutID: head.WorkoutID,
			ClientID:  head.ClientID,
			Date:      head.Date,
			Exercises: []domain.Exercise{},
			Notes:     head.Notes,
			CreatedAt: head.CreatedAt,
		},
		byName: map[string]int{},
	}
}

func (g *workoutGroup) add(row []string) {
	name := cell(row, 3)
	if isLegacyExercisesCell(name) {
		g.workout.Exercises = append(g.workout.Exercises, parseLegacyExercises(name)...)
		return
	}

	sr := rowToWorkoutSet(row)
	key := domain.NormalizeExerciseName(sr.ExerciseName)
	idx, ok := g.byName[key]
	if !ok {
		idx = len(g.workout.Exercises)
		g.byName[key] = idx
		g.workout.Exercises = append(g.workout.Exercises, domain.Exercise{
			ExerciseName: sr.ExerciseName,
			Sets:         []domain.Set{},
		})
	}

	set := domain.Set{Reps: sr.Reps, Weight: sr.Weight}
	// The row carries the workout notes when the set had none of its own.
	if sr.Notes != g.workout.Notes {
		set.Notes = sr.Notes
	}
	g.workout.Exercises[idx].Sets = append(g.workout.Exercises[idx].Sets, set)
}

// isLegacyExercisesCell reports whether an exerciseName cell actually holds a
// JSON exercises array from the retired one-row-per-workout format.
func isLegacyExercisesCell(v string) bool {
	return strings.HasPrefix(strings.TrimSpace(v), "[")
}

func parseLegacyExercises(v string) []domain.Exercise {
	var exercises []domain.Exercise
	if err := json.Unmarshal([]byte(v), &exercises); err != nil {
		return []domain.Exercise{}
	}
	return exercises
}

// trainerToRow maps a trainer account onto the five Trainers columns.
func trainerToRow(t domain.Trainer) []string {
	return []string{t.TrainerID, t.Name, t.Email, t.PasswordHash, t.CreatedAt}
}

func rowToTrainer(row []string) *domain.Trainer {
	if len(row) == 0 {
		return nil
	}
	return &domain.Trainer{
		TrainerID:    cell(row, 0),
		Name:         cell(row, 1),
		Email:        cell(row, 2),
		PasswordHash: cell(row, 3),
		CreatedAt:    cell(row, 4),
	}
}

// cell returns row[i], or "" when the row is too short.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// formatNumber renders a float the way the original sheet data does: no
// exponent, no trailing zeros ("135", "22.5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseIntDefault(v string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
		return n
	}
	// Sheets sometimes hands back integers as "5.0".
	if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
		return int(f)
	}
	return def
}

func parseFloatDefault(v string, def float64) float64 {
	if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
		return f
	}
	return def
}
