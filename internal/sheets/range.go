package sheets

import "fmt"

// maxColumns is the widest table the single-letter column arithmetic below
// supports. Both table schemas in this app are well under it.
const maxColumns = 26

// columnLetter returns the spreadsheet column letter for a 0-based column
// index (0 -> A, 5 -> F).
func columnLetter(index int) (string, error) {
	if index < 0 || index >= maxColumns {
		return "", fmt.Errorf("column index %d outside supported range A-Z", index)
	}
	return string(rune('A' + index)), nil
}

// dataRange builds an A1-notation range covering width columns of the
// inclusive 1-indexed row span [rowStart, rowEnd], e.g. "Clients!A2:F2".
func dataRange(sheet string, width, rowStart, rowEnd int) (string, error) {
	if width < 1 {
		return "", fmt.Errorf("range width must be positive, got %d", width)
	}
	last, err := columnLetter(width - 1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s!A%d:%s%d", sheet, rowStart, last, rowEnd), nil
}

// rowWidth returns the widest row in rows, used to size update ranges.
func rowWidth(rows [][]string) int {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}
