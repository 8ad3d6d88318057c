package matrixlab

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Classic exercises on small integer matrices"
	MsgMenuShort       = "Open the interactive menu"
	MsgMenuLong        = "Open the interactive menu. This is also what matrixlab does when run without a command."
	MsgSumsShort       = "Print row and column sums"
	MsgDiagonalsShort  = "Sum, product and ratio of the diagonals"
	MsgSortShort       = "Sort the values around each diagonal"
	MsgRotateShort     = "Rotate one ring of a square matrix"
	MsgGenConfigShort  = "Generate the default configuration file"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Version output
	MsgVersionFormat = "matrixlab version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default is $XDG_CONFIG_HOME/matrixlab/config.toml)"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagSeed      = "Seed for the random generator, for reproducible matrices"
	MsgFlagFile      = "Read the matrix from a file (.toml, .yaml, .json or plain text)"
	MsgFlagRows      = "Number of rows of the random matrix"
	MsgFlagCols      = "Number of columns of the random matrix"
	MsgFlagMin       = "Smallest random value"
	MsgFlagMax       = "Largest random value"
	MsgFlagSize      = "Size n of the random n×n matrix"
	MsgFlagRing      = "Ring to rotate, 1 being the outer border"
	MsgFlagDirection = "Rotation direction: left or right"
	MsgFlagAngle     = "Rotation angle: 90, 180 or 270"
	MsgFlagWrite     = "Write config to the user config file instead of stdout"
	MsgFlagForce     = "Overwrite an existing config file"
	MsgFlagPath      = "Write the config to this path instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sums-long.txt
	msgSumsLongRaw string
	MsgSumsLong    = strings.TrimSpace(msgSumsLongRaw)

	//go:embed msgs/sums-example.txt
	msgSumsExampleRaw string
	MsgSumsExample    = strings.TrimRight(msgSumsExampleRaw, "\n")

	//go:embed msgs/diagonals-long.txt
	msgDiagonalsLongRaw string
	MsgDiagonalsLong    = strings.TrimSpace(msgDiagonalsLongRaw)

	//go:embed msgs/diagonals-example.txt
	msgDiagonalsExampleRaw string
	MsgDiagonalsExample    = strings.TrimRight(msgDiagonalsExampleRaw, "\n")

	//go:embed msgs/sort-long.txt
	msgSortLongRaw string
	MsgSortLong    = strings.TrimSpace(msgSortLongRaw)

	//go:embed msgs/sort-example.txt
	msgSortExampleRaw string
	MsgSortExample    = strings.TrimRight(msgSortExampleRaw, "\n")

	//go:embed msgs/rotate-long.txt
	msgRotateLongRaw string
	MsgRotateLong    = strings.TrimSpace(msgRotateLongRaw)

	//go:embed msgs/rotate-example.txt
	msgRotateExampleRaw string
	MsgRotateExample    = strings.TrimRight(msgRotateExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
