package matrixio

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/matrixlab/pkg/errors"
)

// ParseRow splits line on whitespace (commas count as whitespace) and parses
// each field as an integer. When want is non-negative the row must have
// exactly want values.
func ParseRow(line string, want int) ([]int, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))

	if want >= 0 && len(fields) > want {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"row has more values than expected (%d of %d)", len(fields), want).
			WithDetail("got", len(fields)).
			WithDetail("want", want)
	}
	if want >= 0 && len(fields) < want {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"row has fewer values than expected (%d of %d)", len(fields), want).
			WithDetail("got", len(fields)).
			WithDetail("want", want)
	}

	row := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Newf(errors.ErrInvalidInput, "%q is not a valid integer", f).
				WithDetail("value", f)
		}
		row[i] = v
	}
	return row, nil
}
