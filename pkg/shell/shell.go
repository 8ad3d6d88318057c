// Package shell runs the interactive menu: pick a feature, fill a matrix at
// random or by hand, and see the result.
package shell

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/matrixlab/pkg/commands"
	"github.com/arthur-debert/matrixlab/pkg/config"
	"github.com/arthur-debert/matrixlab/pkg/errors"
	"github.com/arthur-debert/matrixlab/pkg/generate"
	"github.com/arthur-debert/matrixlab/pkg/logging"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/ring"
	"github.com/arthur-debert/matrixlab/pkg/style"
	"github.com/arthur-debert/matrixlab/pkg/ui"
)

const mainMenu = `[title]Menu[/title]
[bold]1.[/bold] Row and column sums
[bold]2.[/bold] Diagonal arithmetic
[bold]3.[/bold] Sorting around the diagonals
[bold]4.[/bold] Ring rotation
[bold]0.[/bold] Quit

Option: `

const fillMenu = `You can generate the values at random or enter them by hand.
What do you want to do?
[bold]1.[/bold] Generate random values
[bold]2.[/bold] Enter values manually
[bold]0.[/bold] Cancel

Option: `

// Options configures a Shell.
type Options struct {
	In  io.Reader
	Out io.Writer

	// Renderer prints results and errors.
	Renderer ui.Renderer

	// Styled renders prompt markup with colors. Otherwise markup is
	// stripped.
	Styled bool

	Config    *config.Config
	Generator *generate.Generator
	Clearer   ScreenClearer
}

// Shell is the interactive menu loop.
type Shell struct {
	prompter
	renderer ui.Renderer
	cfg      *config.Config
	gen      *generate.Generator
	clearer  ScreenClearer
	logger   zerolog.Logger
}

// New builds a Shell from opts, filling in defaults for anything unset
// except In, Out and Renderer.
func New(opts Options) (*Shell, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Default(); err != nil {
			return nil, err
		}
	}
	gen := opts.Generator
	if gen == nil {
		gen = generate.NewRandom()
	}
	clearer := opts.Clearer
	if clearer == nil {
		clearer = NopClearer{}
	}
	text := style.Strip
	if opts.Styled {
		text = style.Render
	}

	return &Shell{
		prompter: prompter{in: bufio.NewReader(opts.In), out: opts.Out, text: text},
		renderer: opts.Renderer,
		cfg:      cfg,
		gen:      gen,
		clearer:  clearer,
		logger:   logging.GetLogger("shell"),
	}, nil
}

// Run shows the main menu until the user quits or input ends. Errors from a
// feature are rendered and the menu comes back.
func (s *Shell) Run() error {
	for {
		s.clearer.Clear(s.out)
		s.printf("%s", mainMenu)

		line, err := s.readLine()
		if err != nil {
			s.logger.Debug().Msg("Input closed at main menu")
			return nil
		}

		var option int
		if _, scanErr := fmt.Sscan(line, &option); scanErr != nil {
			again, cerr := s.confirm("\nThe option entered is not valid.\nReturn to the main menu?")
			if cerr != nil || !again {
				return nil
			}
			continue
		}

		s.logger.Debug().Int("option", option).Msg("Menu option selected")
		if option == 0 {
			return nil
		}

		if err := s.dispatch(option); err != nil {
			if errors.IsErrorCode(err, errors.ErrInputAbandoned) {
				s.logger.Info().Err(err).Int("option", option).Msg("Operation abandoned")
			} else if rerr := s.renderer.RenderError(err); rerr != nil {
				return rerr
			}
		}

		s.printf("\nPress enter to continue...")
		if _, err := s.readLine(); err != nil {
			return nil
		}
	}
}

func (s *Shell) dispatch(option int) error {
	switch option {
	case 1:
		return s.sums()
	case 2:
		return s.diagonals()
	case 3:
		return s.sorting()
	case 4:
		return s.rotation()
	default:
		s.printf("Invalid option\n")
		return nil
	}
}

func (s *Shell) sums() error {
	s.clearer.Clear(s.out)
	c := s.cfg.Sums
	rows := s.gen.IntBetween(c.MinSize, c.MaxSize)
	cols := s.gen.IntBetween(c.MinSize, c.MaxSize)

	s.printf("[title]ROW AND COLUMN SUMS[/title]\nGenerated dimensions:\n    n: %d\n    m: %d\n\n", rows, cols)

	m, err := s.fill(c.Generate(rows, cols))
	if err != nil {
		return err
	}

	result, err := commands.Sums(commands.SumsOptions{Matrix: m})
	if err != nil {
		return err
	}
	return s.renderer.RenderResult(result)
}

func (s *Shell) diagonals() error {
	s.clearer.Clear(s.out)
	s.printf(`[title]DIAGONAL ARITHMETIC[/title]
Once the matrix is filled, the following are computed:
    1. Sum of the main diagonal.
    2. Product of the secondary diagonal.
    3. The sum divided by the product.

`)

	m, err := s.squareMatrix(s.cfg.Diagonals)
	if err != nil {
		return err
	}

	result, err := commands.Diagonals(commands.DiagonalsOptions{Matrix: m})
	if err != nil {
		return err
	}
	s.clearer.Clear(s.out)
	return s.renderer.RenderResult(result)
}

func (s *Shell) sorting() error {
	s.clearer.Clear(s.out)
	s.printf(`[title]SORTING AROUND THE DIAGONALS[/title]
Values above each diagonal are sorted from largest to smallest and values
below it from smallest to largest. Every value stays on a cell of its region.

`)

	m, err := s.squareMatrix(s.cfg.Sorting)
	if err != nil {
		return err
	}

	result, err := commands.SortDiagonals(commands.SortOptions{Matrix: m})
	if err != nil {
		return err
	}
	return s.renderer.RenderResult(result)
}

func (s *Shell) rotation() error {
	s.clearer.Clear(s.out)
	s.printf(`[title]RING ROTATION[/title]
Ring 1 is the outer border, ring 2 the border inside it, and so on.

`)

	m, err := s.squareMatrix(s.cfg.Rotation)
	if err != nil {
		return err
	}
	n := m.Rows()

	if ring.Count(n) == 0 {
		return errors.Newf(errors.ErrInvalidRingIndex, "a %dx%d matrix has no ring to rotate", n, n).
			WithDetail("size", n)
	}

	k, err := s.askInt(
		fmt.Sprintf("Ring to rotate (1-%d): ", ring.Count(n)),
		"Enter the ring again?",
		func(k int) error {
			_, err := ring.Edges(m, k)
			return err
		})
	if err != nil {
		return err
	}

	dir, err := s.askDirection()
	if err != nil {
		return err
	}

	degrees, err := s.askInt("Angle (90, 180 or 270): ", "Enter the angle again?", func(v int) error {
		_, err := ring.ParseAngle(v)
		return err
	})
	if err != nil {
		return err
	}

	result, err := commands.RotateRing(commands.RotateOptions{
		Matrix:    m,
		Ring:      k,
		Direction: dir,
		Angle:     ring.Angle(degrees),
	})
	if err != nil {
		return err
	}
	return s.renderer.RenderResult(result)
}

func (s *Shell) askDirection() (ring.Direction, error) {
	for {
		s.printf("Direction (left/right): ")
		line, err := s.readLine()
		if err != nil {
			return ring.Right, err
		}
		dir, perr := ring.ParseDirection(line)
		if perr == nil {
			return dir, nil
		}
		if err := s.retry(perr, "Enter the direction again?"); err != nil {
			return ring.Right, err
		}
	}
}

// squareMatrix asks for n and fills an n×n matrix.
func (s *Shell) squareMatrix(r config.ValueRange) (matrix.Matrix, error) {
	n, err := s.askInt("Enter the size n of the n×n matrix.\nn: ", "Enter n again?", positive)
	if err != nil {
		return nil, err
	}
	s.printf("\n")
	return s.fill(r.Generate(n))
}

func positive(n int) error {
	if n <= 0 {
		return errors.Newf(errors.ErrInvalidDimension, "the size must be positive, got %d", n)
	}
	return nil
}

// fill asks how to fill a matrix shaped by opts and returns it.
func (s *Shell) fill(opts generate.Options) (matrix.Matrix, error) {
	for {
		s.printf("%s", fillMenu)
		line, err := s.readLine()
		if err != nil {
			return nil, err
		}

		var option int
		if _, scanErr := fmt.Sscan(line, &option); scanErr != nil {
			problem := errors.New(errors.ErrInvalidInput, "Invalid option. Options are chosen with numbers.")
			if err := s.retry(problem, "Choose an option again?"); err != nil {
				return nil, err
			}
			s.clearer.Clear(s.out)
			continue
		}

		switch option {
		case 1:
			s.logger.Debug().Int("rows", opts.Rows).Int("cols", opts.Cols).Msg("Generating matrix")
			return s.gen.Matrix(opts)
		case 2:
			return s.manual(opts)
		case 0:
			return nil, errors.New(errors.ErrInputAbandoned, "operation cancelled")
		default:
			s.printf("\nInvalid option.\n\n")
		}
	}
}

func (s *Shell) manual(opts generate.Options) (matrix.Matrix, error) {
	rows := make([][]int, opts.Rows)
	for i := range rows {
		row, err := s.askRow(i, opts.Cols, opts.ExcludeZero)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return matrix.FromRows(rows)
}
