package genconfig

import (
	"github.com/arthur-debert/matrixlab/pkg/config"
	"github.com/arthur-debert/matrixlab/pkg/logging"
	"github.com/arthur-debert/matrixlab/pkg/types"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Write stores the defaults on disk instead of only returning them.
	Write bool

	// Path overrides the destination. Defaults to config.DefaultPath().
	Path string

	// Force overwrites an existing file.
	Force bool
}

// GenConfig outputs or writes the default configuration
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &types.GenConfigResult{
		Content: config.DefaultContent(),
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	path := opts.Path
	if path == "" {
		path = config.DefaultPath()
	}
	result.Path = path

	logger.Info().Str("path", path).Bool("force", opts.Force).Msg("Writing config file")
	if err := config.WriteDefault(path, opts.Force); err != nil {
		return nil, err
	}

	result.Written = true
	return result, nil
}
