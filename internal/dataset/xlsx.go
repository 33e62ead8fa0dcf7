package dataset

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads one sheet of a workbook. An empty sheet name selects the
// first sheet; names match case-insensitively.
func ReadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open xlsx")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Newf("workbook %s has no sheets", filepath.Base(path))
	}
	target := sheets[0]
	if sheet != "" {
		target = ""
		for _, s := range sheets {
			if strings.EqualFold(s, sheet) {
				target = s
				break
			}
		}
		if target == "" {
			return nil, errors.Newf("sheet %q not found in workbook %s; available sheets: %s",
				sheet, filepath.Base(path), strings.Join(sheets, ", "))
		}
	}

	rows, err := f.GetRows(target)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %s", target)
	}
	// Leading empty rows are skipped before the header.
	first := 0
	for first < len(rows) && blank(rows[first]) {
		first++
	}
	if first == len(rows) {
		return nil, errors.Newf("sheet %s is empty", target)
	}

	header := cleanHeader(rows[first])
	t := &Table{Header: header}
	for i := first + 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		t.add(i+1, toRow(header, rows[i]))
	}
	return t, nil
}
