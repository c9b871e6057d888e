package sheets

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-process Store used by tests (and usable as a throwaway
// backend). It keeps the same index conventions as the real backends and
// counts header writes so idempotency can be asserted.
type MemoryStore struct {
	mu     sync.Mutex
	tables map[string][][]string
	order  []string

	// HeaderWrites counts the EnsureHeaders calls that actually wrote.
	HeaderWrites int

	failNext error
}

// NewMemoryStore returns an empty store with no sheets.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: map[string][][]string{}}
}

// Seed replaces the named sheet's rows wholesale, creating the sheet if
// needed. Row 0 is expected to be the header.
func (s *MemoryStore) Seed(name string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[name]; !ok {
		s.order = append(s.order, name)
	}
	copied := make([][]string, len(rows))
	for i, row := range rows {
		copied[i] = append([]string(nil), row...)
	}
	s.tables[name] = copied
}

// Rows returns a copy of the named sheet's current rows, header included.
func (s *MemoryStore) Rows(name string) [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.tables[name]
	copied := make([][]string, len(rows))
	for i, row := range rows {
		copied[i] = append([]string(nil), row...)
	}
	return copied
}

// FailNext makes the next store call return err instead of operating, to
// simulate a transport failure.
func (s *MemoryStore) FailNext(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = err
}

func (s *MemoryStore) takeFailure() error {
	err := s.failNext
	s.failNext = nil
	return err
}

func (s *MemoryStore) ListSheetNames(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	return append([]string(nil), s.order...), nil
}

func (s *MemoryStore) EnsureSheet(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	if _, ok := s.tables[name]; !ok {
		s.tables[name] = [][]string{}
		s.order = append(s.order, name)
	}
	return nil
}

func (s *MemoryStore) EnsureHeaders(ctx context.Context, name string, headers []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	rows, ok := s.tables[name]
	if !ok {
		return &TableNotFoundError{Table: name, Available: s.order}
	}
	var first []string
	if len(rows) > 0 {
		first = rows[0]
	}
	if headersMatch(headers, first) {
		return nil
	}
	header := append([]string(nil), headers...)
	if len(rows) == 0 {
		s.tables[name] = [][]string{header}
	} else {
		rows[0] = header
	}
	s.HeaderWrites++
	return nil
}

func (s *MemoryStore) ReadAll(ctx context.Context, name string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	rows, ok := s.tables[name]
	if !ok {
		return nil, &TableNotFoundError{Table: name, Available: s.order}
	}
	copied := make([][]string, len(rows))
	for i, row := range rows {
		copied[i] = append([]string(nil), row...)
	}
	return copied, nil
}

func (s *MemoryStore) AppendRows(ctx context.Context, name string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	existing, ok := s.tables[name]
	if !ok {
		return &TableNotFoundError{Table: name, Available: s.order}
	}
	for _, row := range rows {
		existing = append(existing, append([]string(nil), row...))
	}
	s.tables[name] = existing
	return nil
}

func (s *MemoryStore) UpdateRange(ctx context.Context, name string, rowStart, rowEnd int, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	if len(rows) != rowEnd-rowStart+1 {
		return &RangeMismatchError{Table: name, RowStart: rowStart, RowEnd: rowEnd, Rows: len(rows)}
	}
	existing, ok := s.tables[name]
	if !ok {
		return &TableNotFoundError{Table: name, Available: s.order}
	}
	// Sheet rows are 1-indexed; grow the sheet if the range runs past it.
	for len(existing) < rowEnd {
		existing = append(existing, []string{})
	}
	for i, row := range rows {
		existing[rowStart-1+i] = append([]string(nil), row...)
	}
	s.tables[name] = existing
	return nil
}

func (s *MemoryStore) DeleteRows(ctx context.Context, name string, indices []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	if _, ok := s.tables[name]; !ok {
		return &TableNotFoundError{Table: name, Available: s.order}
	}
	s.deleteLocked(name, indices)
	return nil
}

func (s *MemoryStore) InsertRowsAt(ctx context.Context, name string, position, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	if _, ok := s.tables[name]; !ok {
		return &TableNotFoundError{Table: name, Available: s.order}
	}
	s.insertLocked(name, position, count)
	return nil
}

func (s *MemoryStore) ReplaceRows(ctx context.Context, name string, indices []int, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	if len(indices) == 0 {
		return ErrNoReplaceIndices
	}
	if _, ok := s.tables[name]; !ok {
		return &TableNotFoundError{Table: name, Available: s.order}
	}
	anchor := indices[0]
	for _, idx := range indices {
		if idx < anchor {
			anchor = idx
		}
	}
	s.deleteLocked(name, indices)
	s.insertLocked(name, anchor, count)
	return nil
}

// deleteLocked removes rows highest-index-first. Caller holds the mutex.
func (s *MemoryStore) deleteLocked(name string, indices []int) {
	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	rows := s.tables[name]
	for _, idx := range sorted {
		if idx < 0 || idx >= len(rows) {
			continue
		}
		rows = append(rows[:idx], rows[idx+1:]...)
	}
	s.tables[name] = rows
}

func (s *MemoryStore) insertLocked(name string, position, count int) {
	if count <= 0 {
		return
	}
	rows := s.tables[name]
	if position > len(rows) {
		position = len(rows)
	}
	gap := make([][]string, count)
	for i := range gap {
		gap[i] = []string{}
	}
	rows = append(rows[:position], append(gap, rows[position:]...)...)
	s.tables[name] = rows
}
