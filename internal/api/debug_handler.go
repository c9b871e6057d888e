package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"warbak/trainer-app/internal/repository/sheetrepo"
	"warbak/trainer-app/internal/sheets"
)

// DebugHandler reports backend readiness: which sheets exist and whether
// their header rows match what the repositories expect.
type DebugHandler struct {
	store sheets.Store
}

// NewDebugHandler creates a new DebugHandler.
func NewDebugHandler(store sheets.Store) *DebugHandler {
	return &DebugHandler{store: store}
}

// SheetStatus describes one expected sheet.
type SheetStatus struct {
	Exists          bool     `json:"exists"`
	HasHeaders      bool     `json:"hasHeaders"`
	Headers         []string `json:"headers"`
	ExpectedHeaders []string `json:"expectedHeaders"`
	HeadersMatch    bool     `json:"headersMatch"`
}

// SheetsDebugResponse is the body of GET /api/v1/debug/sheets.
type SheetsDebugResponse struct {
	AvailableSheets []string               `json:"availableSheets"`
	ExpectedSheets  []string               `json:"expectedSheets"`
	MissingSheets   []string               `json:"missingSheets"`
	Sheets          map[string]SheetStatus `json:"sheets"`
	Status          string                 `json:"status"`
}

// GetSheets handles GET /api/v1/debug/sheets.
func (h *DebugHandler) GetSheets(c *gin.Context) {
	ctx := c.Request.Context()

	available, err := h.store.ListSheetNames(ctx)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	expected := []struct {
		name    string
		headers []string
	}{
		{sheetrepo.ClientsSheet, sheetrepo.ClientHeaders},
		{sheetrepo.WorkoutsSheet, sheetrepo.WorkoutHeaders},
		{sheetrepo.TrainersSheet, sheetrepo.TrainerHeaders},
	}

	resp := SheetsDebugResponse{
		AvailableSheets: available,
		ExpectedSheets:  make([]string, 0, len(expected)),
		MissingSheets:   []string{},
		Sheets:          make(map[string]SheetStatus, len(expected)),
		Status:          "ready",
	}

	for _, e := range expected {
		resp.ExpectedSheets = append(resp.ExpectedSheets, e.name)

		status := SheetStatus{
			Exists:          containsSheet(available, e.name),
			Headers:         []string{},
			ExpectedHeaders: e.headers,
		}
		if status.Exists {
			status.Headers = h.headerRow(ctx, e.name)
		} else {
			resp.MissingSheets = append(resp.MissingSheets, e.name)
		}
		status.HasHeaders = len(status.Headers) > 0
		status.HeadersMatch = headersEqualFold(e.headers, status.Headers)

		if !status.Exists || !status.HasHeaders {
			resp.Status = "auto_setup_enabled"
		}
		resp.Sheets[e.name] = status
	}

	c.JSON(http.StatusOK, resp)
}

// headerRow reads a sheet's first row, tolerating empty sheets.
func (h *DebugHandler) headerRow(ctx context.Context, name string) []string {
	rows, err := h.store.ReadAll(ctx, name)
	if err != nil || len(rows) == 0 {
		return []string{}
	}
	return rows[0]
}

func containsSheet(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func headersEqualFold(want, got []string) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if !strings.EqualFold(want[i], got[i]) {
			return false
		}
	}
	return true
}
