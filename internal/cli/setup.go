package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/Alp4ka/tableview/internal/config"
	"github.com/Alp4ka/tableview/internal/dataset"
	"github.com/Alp4ka/tableview/internal/logging"
)

// setup resolves the configuration, attaches the logger to the command context
// and loads the dataset catalog.
func (a *app) setup(cmd *cobra.Command, lookupEnv func(string) (string, bool)) error {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path, lookupEnv)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.LogLevel = "debug"
		cfg.LogFormat = logging.FormatConsole
	}

	if err = cfg.Validate(); err != nil {
		return err
	}

	logCfg := cfg.Logging()
	logCfg.NoColor = !isTerminal(os.Stderr)
	logger := logging.Component(logging.New(cmd.ErrOrStderr(), logCfg), "cli")

	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	locale := cfg.Language()

	catalog, err := dataset.Builtin(locale)
	if err != nil {
		return err
	}

	if cfg.DatasetsDir != "" {
		names, err := catalog.LoadDir(cfg.DatasetsDir, locale)
		if err != nil {
			return fmt.Errorf("loading datasets: %w", err)
		}

		logger.Debug().Str("dir", cfg.DatasetsDir).Strs("datasets", names).Msg("datasets loaded")
	}

	a.cfg = cfg
	a.catalog = catalog
	a.printer = message.NewPrinter(locale)

	logger.Debug().
		Str("command", cmd.Name()).
		Str("locale", locale.String()).
		Int("datasets", catalog.Len()).
		Msg("command started")

	return nil
}
