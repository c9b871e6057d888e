package sheets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/xuri/excelize/v2"
)

// ExcelStore implements Store against a local .xlsx workbook. It exists for
// development and offline use; semantics mirror GoogleStore, with excelize's
// 1-based row addressing translated at the boundary.
//
// Every mutation saves the workbook, so a crash loses at most the operation in
// flight. Access is serialized with a mutex; the file handle is not safe for
// concurrent use.
type ExcelStore struct {
	path string

	mu   sync.Mutex
	file *excelize.File
}

// OpenExcelStore opens the workbook at path, creating it (and its directory)
// when absent.
func OpenExcelStore(path string) (*ExcelStore, error) {
	if path == "" {
		return nil, fmt.Errorf("excel workbook path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workbook directory: %w", err)
	}

	var f *excelize.File
	if _, err := os.Stat(path); err == nil {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
		}
	} else {
		f = excelize.NewFile()
		if err := f.SaveAs(path); err != nil {
			return nil, fmt.Errorf("failed to create workbook %s: %w", path, err)
		}
	}
	return &ExcelStore{path: path, file: f}, nil
}

// Close releases the underlying workbook handle.
func (s *ExcelStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

func (s *ExcelStore) ListSheetNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.GetSheetList(), nil
}

func (s *ExcelStore) EnsureSheet(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.file.GetSheetIndex(name)
	if err != nil {
		return fmt.Errorf("failed to look up sheet %q: %w", name, err)
	}
	if idx != -1 {
		return nil
	}
	if _, err := s.file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}
	return s.save()
}

func (s *ExcelStore) EnsureHeaders(ctx context.Context, name string, headers []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.rows(name)
	if err != nil {
		return err
	}
	var first []string
	if len(rows) > 0 {
		first = rows[0]
	}
	if headersMatch(headers, first) {
		return nil
	}
	if err := s.setRow(name, 1, headers); err != nil {
		return err
	}
	return s.save()
}

func (s *ExcelStore) ReadAll(ctx context.Context, name string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows(name)
}

func (s *ExcelStore) AppendRows(ctx context.Context, name string, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.rows(name)
	if err != nil {
		return err
	}
	start := len(existing) + 1
	for i, row := range rows {
		if err := s.setRow(name, start+i, row); err != nil {
			return err
		}
	}
	return s.save()
}

func (s *ExcelStore) UpdateRange(ctx context.Context, name string, rowStart, rowEnd int, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(rows) != rowEnd-rowStart+1 {
		return &RangeMismatchError{Table: name, RowStart: rowStart, RowEnd: rowEnd, Rows: len(rows)}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.rows(name); err != nil {
		return err
	}
	for i, row := range rows {
		if err := s.setRow(name, rowStart+i, row); err != nil {
			return err
		}
	}
	return s.save()
}

func (s *ExcelStore) DeleteRows(ctx context.Context, name string, indices []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(indices) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.rows(name); err != nil {
		return err
	}
	if err := s.deleteLocked(name, indices); err != nil {
		return err
	}
	return s.save()
}

func (s *ExcelStore) InsertRowsAt(ctx context.Context, name string, position, count int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if count <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.rows(name); err != nil {
		return err
	}
	// excelize rows are 1-based; grid index 0 is workbook row 1.
	if err := s.file.InsertRows(name, position+1, count); err != nil {
		return fmt.Errorf("failed to insert %d rows into sheet %q: %w", count, name, err)
	}
	return s.save()
}

// ReplaceRows deletes the rows at indices and opens a count-row gap at the
// minimum original index. excelize has no multi-request batch, so the steps
// run sequentially and the workbook is saved once at the end.
func (s *ExcelStore) ReplaceRows(ctx context.Context, name string, indices []int, count int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(indices) == 0 {
		return ErrNoReplaceIndices
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.rows(name); err != nil {
		return err
	}
	anchor := indices[0]
	for _, idx := range indices {
		if idx < anchor {
			anchor = idx
		}
	}
	if err := s.deleteLocked(name, indices); err != nil {
		return err
	}
	if count > 0 {
		if err := s.file.InsertRows(name, anchor+1, count); err != nil {
			return fmt.Errorf("failed to insert %d rows into sheet %q: %w", count, name, err)
		}
	}
	return s.save()
}

// deleteLocked removes rows highest-index-first so earlier removals never
// shift a position still pending. Caller holds the mutex.
func (s *ExcelStore) deleteLocked(name string, indices []int) error {
	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, idx := range sorted {
		if err := s.file.RemoveRow(name, idx+1); err != nil {
			return fmt.Errorf("failed to delete row %d from sheet %q: %w", idx, name, err)
		}
	}
	return nil
}

// rows reads the whole sheet, mapping a missing tab to TableNotFoundError.
// Caller holds the mutex.
func (s *ExcelStore) rows(name string) ([][]string, error) {
	idx, err := s.file.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up sheet %q: %w", name, err)
	}
	if idx == -1 {
		return nil, &TableNotFoundError{Table: name, Available: s.file.GetSheetList()}
	}
	rows, err := s.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}
	return rows, nil
}

func (s *ExcelStore) setRow(name string, row int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, v := range cells {
		values[i] = v
	}
	if err := s.file.SetSheetRow(name, fmt.Sprintf("A%d", row), &values); err != nil {
		return fmt.Errorf("failed to write row %d of sheet %q: %w", row, name, err)
	}
	return nil
}

func (s *ExcelStore) save() error {
	if err := s.file.SaveAs(s.path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", s.path, err)
	}
	return nil
}
