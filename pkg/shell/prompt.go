package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/matrixlab/pkg/errors"
	"github.com/arthur-debert/matrixlab/pkg/matrixio"
)

// prompter reads answers line by line. Every retry is a loop, never a
// recursive call, so a user can fail any number of times.
type prompter struct {
	in   *bufio.Reader
	out  io.Writer
	text func(string) string
}

func (p *prompter) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprint(p.out, p.text(fmt.Sprintf(format, args...)))
}

// readLine returns the next line without its newline. End of input is
// reported as ErrInputAbandoned.
func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", errors.New(errors.ErrInputAbandoned, "input closed")
		}
		return "", errors.Wrap(err, errors.ErrInputAbandoned, "failed to read input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirm asks a yes/no question. Only an explicit yes counts.
func (p *prompter) confirm(question string) (bool, error) {
	p.printf("%s [bold]Yes(y) - No(other)[/bold]: ", question)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	return isYes(answer), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "si", "sí":
		return true
	default:
		return false
	}
}

// retry reports problem and asks whether to try again. A "no" becomes an
// ErrInputAbandoned error.
func (p *prompter) retry(problem error, question string) error {
	p.printf("\n[error]%s[/error]\n", message(problem))
	ok, err := p.confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrap(problem, errors.ErrInputAbandoned, "input abandoned")
	}
	return nil
}

// askInt reads an integer, re-prompting until it parses and passes check.
func (p *prompter) askInt(prompt, question string, check func(int) error) (int, error) {
	for {
		p.printf("%s", prompt)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		v, perr := strconv.Atoi(strings.TrimSpace(line))
		if perr != nil {
			perr = errors.Newf(errors.ErrInvalidInput, "%q is not a valid number", strings.TrimSpace(line))
		} else if check != nil {
			perr = check(v)
		}
		if perr == nil {
			return v, nil
		}

		if err := p.retry(perr, question); err != nil {
			return 0, err
		}
	}
}

// askRow reads one row of exactly cols integers.
func (p *prompter) askRow(index, cols int, excludeZero bool) ([]int, error) {
	for {
		p.printf("Enter the %d values of row %d separated by spaces: ", cols, index)
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}

		row, perr := matrixio.ParseRow(line, cols)
		if perr == nil && excludeZero {
			perr = rejectZero(row)
		}
		if perr == nil {
			return row, nil
		}

		if err := p.retry(perr, fmt.Sprintf("Correct row %d?", index)); err != nil {
			return nil, err
		}
	}
}

func rejectZero(row []int) error {
	for _, v := range row {
		if v == 0 {
			return errors.New(errors.ErrInvalidInput,
				"only positive or negative integers are allowed, zero is not")
		}
	}
	return nil
}

// message returns the human part of a coded error.
func message(err error) string {
	if coded, ok := err.(*errors.CodedError); ok {
		return coded.Message
	}
	return err.Error()
}
