package matrixlab

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/matrixlab/internal/version"
	"github.com/arthur-debert/matrixlab/pkg/config"
	"github.com/arthur-debert/matrixlab/pkg/generate"
	"github.com/arthur-debert/matrixlab/pkg/logging"
	"github.com/arthur-debert/matrixlab/pkg/shell"
	"github.com/arthur-debert/matrixlab/pkg/topics"
	"github.com/arthur-debert/matrixlab/pkg/ui"
	"github.com/arthur-debert/matrixlab/pkg/ui/table"
)

// app holds the global flags and the state that feature commands share once
// setup has run.
type app struct {
	verbosity  int
	configPath string
	format     string
	seed       uint64

	cfg      *config.Config
	output   ui.Format
	renderer ui.Renderer
	gen      *generate.Generator
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "matrixlab",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithOutput(a.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		// No subcommand opens the menu
		RunE:          a.run(a.menu),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().Uint64Var(&a.seed, "seed", 0, MsgFlagSeed)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "features",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(a.newMenuCmd())
	rootCmd.AddCommand(a.newSumsCmd())
	rootCmd.AddCommand(a.newDiagonalsCmd())
	rootCmd.AddCommand(a.newSortCmd())
	rootCmd.AddCommand(a.newRotateCmd())
	rootCmd.AddCommand(a.newGenConfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Initialize topic-based help system from the embedded topics
	opts := topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, topics.Builtin(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// setup loads the configuration and builds the renderer and generator. It
// runs only for commands that need them, so help and completion keep working
// with a broken config file.
func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["display.format"] = a.format
	}

	cfg, err := config.Load(config.Options{Path: a.configPath, Overrides: overrides})
	if err != nil {
		return err
	}

	format, err := ui.ParseFormat(cfg.Display.Format)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	a.output = ui.Resolve(format, out)

	layout := table.Layout{CellWidth: cfg.Display.CellWidth, IndexWidth: cfg.Display.IndexWidth}
	renderer, err := ui.NewRenderer(a.output, out, layout)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("seed") {
		a.gen = generate.NewSeeded(a.seed)
	} else {
		a.gen = generate.NewRandom()
	}

	a.cfg = cfg
	a.renderer = renderer

	log.Debug().
		Str("format", a.output.String()).
		Bool("seeded", cmd.Flags().Changed("seed")).
		Msg("Configuration loaded")
	return nil
}

// run wraps a feature command: setup first, then fn, with any error shown
// through the renderer before it is returned.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.setup(cmd); err != nil {
			// No renderer yet, so report in plain text
			fallback, _ := ui.NewRenderer(ui.FormatText, cmd.ErrOrStderr(), table.DefaultLayout())
			_ = fallback.RenderError(err)
			return err
		}

		if err := fn(cmd, args); err != nil {
			if rerr := a.renderer.RenderError(err); rerr != nil {
				log.Error().Err(rerr).Msg("Failed to render error")
			}
			return err
		}
		return nil
	}
}

func (a *app) menu(cmd *cobra.Command, _ []string) error {
	styled := a.output == ui.FormatTerminal

	var clearer shell.ScreenClearer = shell.NopClearer{}
	if styled && a.cfg.Display.ClearScreen {
		clearer = shell.TerminalClearer{}
	}

	sh, err := shell.New(shell.Options{
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Renderer:  a.renderer,
		Styled:    styled,
		Config:    a.cfg,
		Generator: a.gen,
		Clearer:   clearer,
	})
	if err != nil {
		return err
	}
	return sh.Run()
}
