package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Store abstracts a spreadsheet-style tabular backend: named sheets of rows,
// where row 1 of every sheet is a header row and is never data.
//
// Two index spaces are in play and every implementation must keep them
// straight:
//
//   - UpdateRange speaks 1-indexed sheet rows (header = row 1, first data
//     row = row 2), matching A1 range notation.
//   - DeleteRows, InsertRowsAt and ReplaceRows speak 0-indexed positions
//     within the in-memory row slice returned by ReadAll (header = index 0),
//     matching the backend's grid coordinates.
//
// A row read back may be shorter than the header width; callers treat missing
// trailing cells as empty strings.
type Store interface {
	// ListSheetNames returns the names of all sheets in the backing document.
	ListSheetNames(ctx context.Context) ([]string, error)

	// EnsureSheet creates the named sheet if it is absent. Idempotent.
	EnsureSheet(ctx context.Context, name string) error

	// EnsureHeaders writes headers into row 1 unless the existing first row
	// already equals them case-insensitively and positionally. Idempotent:
	// matching headers cause no write.
	EnsureHeaders(ctx context.Context, name string, headers []string) error

	// ReadAll returns every row of the sheet, header included, in order.
	ReadAll(ctx context.Context, name string) ([][]string, error)

	// AppendRows appends rows at the end of the sheet in one call,
	// preserving input order.
	AppendRows(ctx context.Context, name string, rows [][]string) error

	// UpdateRange overwrites the inclusive 1-indexed row range
	// [rowStart, rowEnd] with rows. len(rows) must equal rowEnd-rowStart+1.
	UpdateRange(ctx context.Context, name string, rowStart, rowEnd int, rows [][]string) error

	// DeleteRows deletes the rows at the given 0-indexed positions in one
	// batch. Positions are resolved against the sheet as it was at call
	// time; implementations process them from highest to lowest so that no
	// deletion shifts a position still waiting to be deleted.
	DeleteRows(ctx context.Context, name string, indices []int) error

	// InsertRowsAt opens a gap of count empty rows starting at the
	// 0-indexed position, shifting subsequent rows down.
	InsertRowsAt(ctx context.Context, name string, position, count int) error

	// ReplaceRows deletes the rows at indices and opens a gap of count empty
	// rows at the minimum original index, issued as a single batch where the
	// backend supports multi-request atomicity. The caller fills the gap
	// with UpdateRange afterwards. indices must be non-empty; without an
	// original row there is no anchor for the gap, and the call fails with
	// ErrNoReplaceIndices.
	ReplaceRows(ctx context.Context, name string, indices []int, count int) error
}

// ErrNoReplaceIndices is returned by ReplaceRows when no row indices were
// given.
var ErrNoReplaceIndices = errors.New("replace requires at least one row index")

// ErrTableNotFound matches any TableNotFoundError via errors.Is.
var ErrTableNotFound = errors.New("sheet not found")

// TableNotFoundError reports an operation against a sheet that does not
// exist, carrying the sheets that do so the message can guide whoever set the
// spreadsheet up.
type TableNotFoundError struct {
	Table     string
	Available []string
}

func (e *TableNotFoundError) Error() string {
	avail := "none"
	if len(e.Available) > 0 {
		avail = strings.Join(e.Available, ", ")
	}
	return fmt.Sprintf("sheet %q not found (available sheets: %s); create a sheet tab named %q in the spreadsheet", e.Table, avail, e.Table)
}

func (e *TableNotFoundError) Is(target error) bool { return target == ErrTableNotFound }

// ErrRangeMismatch matches any RangeMismatchError via errors.Is.
var ErrRangeMismatch = errors.New("range mismatch")

// RangeMismatchError reports an UpdateRange call whose row count does not
// cover the target range.
type RangeMismatchError struct {
	Table            string
	RowStart, RowEnd int
	Rows             int
}

func (e *RangeMismatchError) Error() string {
	return fmt.Sprintf("sheet %q: %d rows do not fit range rows %d-%d (%d wanted)",
		e.Table, e.Rows, e.RowStart, e.RowEnd, e.RowEnd-e.RowStart+1)
}

func (e *RangeMismatchError) Is(target error) bool { return target == ErrRangeMismatch }
