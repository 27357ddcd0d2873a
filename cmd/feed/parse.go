package feed

import (
	"fmt"
	"io"
	"os"

	"github.com/dreamerjackson/moonbag/feed"
	"github.com/dreamerjackson/moonbag/render"
	"github.com/dreamerjackson/moonbag/rowparse"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ParseCmd = &cobra.Command{
	Use:   "parse <name> <file.html>",
	Short: "normalize a saved page.",
	Long:  "normalize a page saved to disk with the named feed's rules, without fetching.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Parse(cmd.OutOrStdout(), args[0], args[1])
	},
}

func Parse(w io.Writer, name, path string) error {
	f, err := feed.Store.Get(name)
	if err != nil {
		return err
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, logCloser, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	defer logger.Sync()

	opts, err := rowOptions(cfg)
	if err != nil {
		return err
	}
	opts = append(opts, rowparse.WithLogger(logger.Named(name)))

	set, report, err := f.Normalize(body, opts...)
	if err != nil {
		return fmt.Errorf("feed %s: %w", name, err)
	}
	logger.Info("page normalized",
		zap.String("feed", name),
		zap.Int("rows", report.Rows),
		zap.Int("skipped", report.Skipped))

	if jsonOut {
		return render.JSON(w, set, limit)
	}
	render.Table(w, set, limit)

	return nil
}
