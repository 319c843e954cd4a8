package report

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseTable reads one table written by WriteTable. invalid is the value of
// the trailing invalid count line, or 0 when absent.
func ParseTable(r io.Reader) (rows []Row, invalid int, err error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, 0, errors.New("report: missing table header")
	}
	if strings.TrimSpace(sc.Text()) != tableHeader {
		return nil, 0, errors.Errorf("report: unexpected header %q", sc.Text())
	}
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "Invalid vote count:") {
			invalid, err = strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Invalid vote count:")))
			if err != nil {
				return nil, 0, errors.Wrapf(err, "report: invalid count line %q", line)
			}
			break
		}
		row, err := parseRow(line)
		if err != nil {
			return nil, 0, err
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "report: read table")
	}
	return rows, invalid, nil
}

func parseRow(line string) (Row, error) {
	f := strings.Fields(line)
	if len(f) != 5 {
		return Row{}, errors.Errorf("report: malformed row %q", line)
	}
	id, err := strconv.Atoi(f[0])
	if err != nil {
		return Row{}, errors.Wrapf(err, "report: row id %q", line)
	}
	if len(f[3]) != 1 {
		return Row{}, errors.Errorf("report: row status %q", line)
	}
	row := Row{ID: id, Status: f[3][0], Name: f[4]}
	if f[1] == "-" {
		row.Withheld = true
		return row, nil
	}
	if row.Count, err = strconv.Atoi(f[1]); err != nil {
		return Row{}, errors.Wrapf(err, "report: row count %q", line)
	}
	row.Percent = f[2]
	return row, nil
}
