package matrixlab

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/matrixlab/internal/version"
	"github.com/arthur-debert/matrixlab/pkg/commands"
	"github.com/arthur-debert/matrixlab/pkg/config"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/ring"
)

// squareFlags are shared by the commands that work on an n×n matrix.
type squareFlags struct {
	file string
	size int
}

func (f *squareFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", MsgFlagFile)
	cmd.Flags().IntVarP(&f.size, "size", "n", 5, MsgFlagSize)
	cmd.MarkFlagsMutuallyExclusive("file", "size")
	_ = cmd.MarkFlagFilename("file", "toml", "yaml", "yml", "json", "txt")
}

// squareMatrix loads the file, or draws a size×size matrix from r.
func (a *app) squareMatrix(f squareFlags, r config.ValueRange) (matrix.Matrix, error) {
	return commands.ResolveInput(commands.InputOptions{
		File:      f.file,
		Generator: a.gen,
		Generate:  r.Generate(f.size),
	})
}

func (a *app) newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		Short:   MsgMenuShort,
		Long:    MsgMenuLong,
		Args:    cobra.NoArgs,
		GroupID: "features",
		RunE:    a.run(a.menu),
	}
}

func (a *app) newSumsCmd() *cobra.Command {
	var (
		file       string
		rows, cols int
		lo, hi     int
	)

	cmd := &cobra.Command{
		Use:     "sums",
		Short:   MsgSumsShort,
		Long:    MsgSumsLong,
		Example: MsgSumsExample,
		Args:    cobra.NoArgs,
		GroupID: "features",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			c := a.cfg.Sums
			if cmd.Flags().Changed("min") {
				c.MinValue = lo
			}
			if cmd.Flags().Changed("max") {
				c.MaxValue = hi
			}
			if !cmd.Flags().Changed("rows") {
				rows = a.gen.IntBetween(c.MinSize, c.MaxSize)
			}
			if !cmd.Flags().Changed("cols") {
				cols = a.gen.IntBetween(c.MinSize, c.MaxSize)
			}

			m, err := commands.ResolveInput(commands.InputOptions{
				File:      file,
				Generator: a.gen,
				Generate:  c.Generate(rows, cols),
			})
			if err != nil {
				return err
			}

			result, err := commands.Sums(commands.SumsOptions{Matrix: m})
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(result)
		}),
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", MsgFlagFile)
	cmd.Flags().IntVar(&rows, "rows", 0, MsgFlagRows)
	cmd.Flags().IntVar(&cols, "cols", 0, MsgFlagCols)
	cmd.Flags().IntVar(&lo, "min", 0, MsgFlagMin)
	cmd.Flags().IntVar(&hi, "max", 0, MsgFlagMax)
	for _, shape := range []string{"rows", "cols", "min", "max"} {
		cmd.MarkFlagsMutuallyExclusive("file", shape)
	}

	return cmd
}

func (a *app) newDiagonalsCmd() *cobra.Command {
	var flags squareFlags

	cmd := &cobra.Command{
		Use:     "diagonals",
		Short:   MsgDiagonalsShort,
		Long:    MsgDiagonalsLong,
		Example: MsgDiagonalsExample,
		Args:    cobra.NoArgs,
		GroupID: "features",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			m, err := a.squareMatrix(flags, a.cfg.Diagonals)
			if err != nil {
				return err
			}

			result, err := commands.Diagonals(commands.DiagonalsOptions{Matrix: m})
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(result)
		}),
	}
	flags.register(cmd)

	return cmd
}

func (a *app) newSortCmd() *cobra.Command {
	var flags squareFlags

	cmd := &cobra.Command{
		Use:     "sort",
		Short:   MsgSortShort,
		Long:    MsgSortLong,
		Example: MsgSortExample,
		Args:    cobra.NoArgs,
		GroupID: "features",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			m, err := a.squareMatrix(flags, a.cfg.Sorting)
			if err != nil {
				return err
			}

			result, err := commands.SortDiagonals(commands.SortOptions{Matrix: m})
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(result)
		}),
	}
	flags.register(cmd)

	return cmd
}

func (a *app) newRotateCmd() *cobra.Command {
	var (
		flags     squareFlags
		k         int
		direction string
		angle     int
	)

	cmd := &cobra.Command{
		Use:     "rotate",
		Short:   MsgRotateShort,
		Long:    MsgRotateLong,
		Example: MsgRotateExample,
		Args:    cobra.NoArgs,
		GroupID: "features",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			dir, err := ring.ParseDirection(direction)
			if err != nil {
				return err
			}
			degrees, err := ring.ParseAngle(angle)
			if err != nil {
				return err
			}

			m, err := a.squareMatrix(flags, a.cfg.Rotation)
			if err != nil {
				return err
			}

			log.Info().
				Int("ring", k).
				Str("direction", dir.String()).
				Int("angle", int(degrees)).
				Msg("Rotating ring")

			result, err := commands.RotateRing(commands.RotateOptions{
				Matrix:    m,
				Ring:      k,
				Direction: dir,
				Angle:     degrees,
			})
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(result)
		}),
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&k, "ring", "k", 1, MsgFlagRing)
	cmd.Flags().StringVarP(&direction, "direction", "d", "right", MsgFlagDirection)
	cmd.Flags().IntVarP(&angle, "angle", "a", 90, MsgFlagAngle)

	_ = cmd.RegisterFlagCompletionFunc("direction", cobra.FixedCompletions(
		[]string{"left", "right"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("angle", cobra.FixedCompletions(
		[]string{"90", "180", "270"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (a *app) newGenConfigCmd() *cobra.Command {
	var opts commands.GenConfigOptions

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			result, err := commands.GenConfig(opts)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(result)
		}),
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&opts.Force, "force", false, MsgFlagForce)
	cmd.Flags().StringVar(&opts.Path, "path", "", MsgFlagPath)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}
