package sheets

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// GoogleStore implements Store against one Google spreadsheet, addressing
// sheets (tabs) by title.
type GoogleStore struct {
	service       *gsheets.Service
	spreadsheetID string
}

// NewGoogleStore creates a store for the given spreadsheet using the provided
// client options (credentials, endpoint overrides for tests, ...).
func NewGoogleStore(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*GoogleStore, error) {
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet ID is required")
	}
	service, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &GoogleStore{service: service, spreadsheetID: spreadsheetID}, nil
}

// ListSheetNames returns the titles of all tabs in the spreadsheet.
func (s *GoogleStore) ListSheetNames(ctx context.Context) ([]string, error) {
	resp, err := s.service.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet %s: %w", s.spreadsheetID, err)
	}
	names := make([]string, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		if sh.Properties != nil {
			names = append(names, sh.Properties.Title)
		}
	}
	return names, nil
}

// EnsureSheet creates the named tab if the spreadsheet does not have it yet.
func (s *GoogleStore) EnsureSheet(ctx context.Context, name string) error {
	names, err := s.ListSheetNames(ctx)
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return nil
		}
	}

	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			AddSheet: &gsheets.AddSheetRequest{
				Properties: &gsheets.SheetProperties{Title: name},
			},
		}},
	}
	if _, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}
	return nil
}

// EnsureHeaders writes headers into row 1 unless the current first row already
// matches case-insensitively.
func (s *GoogleStore) EnsureHeaders(ctx context.Context, name string, headers []string) error {
	readRange, err := dataRange(name, maxColumns, 1, 1)
	if err != nil {
		return err
	}
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return s.classify(ctx, name, err)
	}

	var first []string
	if len(resp.Values) > 0 {
		first = cellsToStrings(resp.Values[0])
	}
	if headersMatch(headers, first) {
		return nil
	}

	writeRange, err := dataRange(name, len(headers), 1, 1)
	if err != nil {
		return err
	}
	vr := &gsheets.ValueRange{Values: [][]interface{}{stringsToCells(headers)}}
	_, err = s.service.Spreadsheets.Values.Update(s.spreadsheetID, writeRange, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write headers to sheet %q: %w", name, err)
	}
	return nil
}

// ReadAll returns every row of the sheet, header included.
func (s *GoogleStore) ReadAll(ctx context.Context, name string) ([][]string, error) {
	readRange := fmt.Sprintf("%s!A:Z", name)
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, s.classify(ctx, name, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		rows = append(rows, cellsToStrings(raw))
	}
	return rows, nil
}

// AppendRows appends rows after the last data row in one call.
func (s *GoogleStore) AppendRows(ctx context.Context, name string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		values = append(values, stringsToCells(row))
	}
	appendRange := fmt.Sprintf("%s!A:Z", name)
	_, err := s.service.Spreadsheets.Values.Append(s.spreadsheetID, appendRange, &gsheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return s.classify(ctx, name, err)
	}
	return nil
}

// UpdateRange overwrites the inclusive 1-indexed row range with rows.
func (s *GoogleStore) UpdateRange(ctx context.Context, name string, rowStart, rowEnd int, rows [][]string) error {
	if len(rows) != rowEnd-rowStart+1 {
		return &RangeMismatchError{Table: name, RowStart: rowStart, RowEnd: rowEnd, Rows: len(rows)}
	}
	writeRange, err := dataRange(name, rowWidth(rows), rowStart, rowEnd)
	if err != nil {
		return err
	}
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		values = append(values, stringsToCells(row))
	}
	_, err = s.service.Spreadsheets.Values.Update(s.spreadsheetID, writeRange, &gsheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return s.classify(ctx, name, err)
	}
	return nil
}

// DeleteRows removes the rows at the given 0-indexed grid positions in one
// batchUpdate. Requests are ordered highest index first so that no deletion
// invalidates a later request's position.
func (s *GoogleStore) DeleteRows(ctx context.Context, name string, indices []int) error {
	if len(indices) == 0 {
		return nil
	}
	sheetID, err := s.sheetID(ctx, name)
	if err != nil {
		return err
	}
	req := &gsheets.BatchUpdateSpreadsheetRequest{Requests: deleteRequests(sheetID, indices)}
	if _, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete %d rows from sheet %q: %w", len(indices), name, err)
	}
	return nil
}

// InsertRowsAt opens a gap of count empty rows at the 0-indexed position.
func (s *GoogleStore) InsertRowsAt(ctx context.Context, name string, position, count int) error {
	if count <= 0 {
		return nil
	}
	sheetID, err := s.sheetID(ctx, name)
	if err != nil {
		return err
	}
	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{insertRequest(sheetID, position, count)},
	}
	if _, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to insert %d rows into sheet %q: %w", count, name, err)
	}
	return nil
}

// ReplaceRows deletes the rows at indices and opens a count-row gap at the
// minimum original index, all in a single batchUpdate so the backend applies
// the whole replacement atomically.
func (s *GoogleStore) ReplaceRows(ctx context.Context, name string, indices []int, count int) error {
	if len(indices) == 0 {
		return ErrNoReplaceIndices
	}
	sheetID, err := s.sheetID(ctx, name)
	if err != nil {
		return err
	}
	anchor := indices[0]
	for _, idx := range indices {
		if idx < anchor {
			anchor = idx
		}
	}
	requests := deleteRequests(sheetID, indices)
	if count > 0 {
		requests = append(requests, insertRequest(sheetID, anchor, count))
	}
	req := &gsheets.BatchUpdateSpreadsheetRequest{Requests: requests}
	if _, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to replace rows in sheet %q: %w", name, err)
	}
	return nil
}

// sheetID resolves a tab title to its numeric grid id.
func (s *GoogleStore) sheetID(ctx context.Context, name string) (int64, error) {
	resp, err := s.service.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to get spreadsheet %s: %w", s.spreadsheetID, err)
	}
	available := make([]string, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		if sh.Properties == nil {
			continue
		}
		if sh.Properties.Title == name {
			return sh.Properties.SheetId, nil
		}
		available = append(available, sh.Properties.Title)
	}
	return 0, &TableNotFoundError{Table: name, Available: available}
}

// classify turns a values-API failure into a TableNotFoundError when the
// range could not be parsed because the tab is missing. The API reports that
// as a 400, not a 404.
func (s *GoogleStore) classify(ctx context.Context, name string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == 400 {
		available, listErr := s.ListSheetNames(ctx)
		if listErr == nil {
			for _, n := range available {
				if n == name {
					// Tab exists, so the 400 is about something else.
					return fmt.Errorf("sheet %q request failed: %w", name, err)
				}
			}
			return &TableNotFoundError{Table: name, Available: available}
		}
	}
	return fmt.Errorf("sheet %q request failed: %w", name, err)
}

func deleteRequests(sheetID int64, indices []int) []*gsheets.Request {
	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	requests := make([]*gsheets.Request, 0, len(sorted))
	for _, idx := range sorted {
		requests = append(requests, &gsheets.Request{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(idx),
					EndIndex:   int64(idx + 1),
				},
			},
		})
	}
	return requests
}

func insertRequest(sheetID int64, position, count int) *gsheets.Request {
	return &gsheets.Request{
		InsertDimension: &gsheets.InsertDimensionRequest{
			Range: &gsheets.DimensionRange{
				SheetId:    sheetID,
				Dimension:  "ROWS",
				StartIndex: int64(position),
				EndIndex:   int64(position + count),
			},
		},
	}
}

func cellsToStrings(raw []interface{}) []string {
	row := make([]string, len(raw))
	for i, cell := range raw {
		if cell == nil {
			continue
		}
		if s, ok := cell.(string); ok {
			row[i] = s
		} else {
			row[i] = fmt.Sprintf("%v", cell)
		}
	}
	return row
}

func stringsToCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}

func headersMatch(want, got []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, w := range want {
		if !strings.EqualFold(w, got[i]) {
			return false
		}
	}
	return true
}
