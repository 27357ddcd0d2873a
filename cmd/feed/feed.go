package feed

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dreamerjackson/moonbag/engine"
	"github.com/dreamerjackson/moonbag/feed"
	_ "github.com/dreamerjackson/moonbag/feedlib"
	"github.com/dreamerjackson/moonbag/render"
	"github.com/dreamerjackson/moonbag/rowparse"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var FeedCmd = &cobra.Command{
	Use:   "feed <name>...",
	Short: "fetch and normalize feeds.",
	Long:  "fetch feeds, normalize their rows, store and print the records.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context(), cmd.OutOrStdout(), args)
	},
}

var ListCmd = &cobra.Command{
	Use:   "feeds",
	Short: "list known feeds.",
	Long:  "list known feeds.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		render.Feeds(cmd.OutOrStdout(), feed.Store.List())
	},
}

var (
	limit   int
	jsonOut bool
)

func init() {
	FeedCmd.Flags().StringVar(
		&configPath, "config", "config.toml", "set config file")
	FeedCmd.Flags().IntVar(
		&limit, "limit", 0, "print at most n records per feed")
	FeedCmd.Flags().BoolVar(
		&jsonOut, "json", false, "print records as json")

	ParseCmd.Flags().StringVar(
		&configPath, "config", "config.toml", "set config file")
	ParseCmd.Flags().IntVar(
		&limit, "limit", 0, "print at most n records")
	ParseCmd.Flags().BoolVar(
		&jsonOut, "json", false, "print records as json")
}

func lookup(names []string) ([]*feed.Feed, error) {
	feeds := make([]*feed.Feed, 0, len(names))
	for _, name := range names {
		f, err := feed.Store.Get(name)
		if err != nil {
			return nil, fmt.Errorf("%w (known feeds: %s)", err, strings.Join(feed.Store.Names(), ", "))
		}
		feeds = append(feeds, f)
	}

	return feeds, nil
}

// Run fetches the named feeds and prints what they yield. Feeds that
// fail are reported; the others are still printed.
func Run(ctx context.Context, w io.Writer, names []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	feeds, err := lookup(names)
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

	storage, storeCloser, err := newStorage(cfg, logger)
	if err != nil {
		return err
	}
	if storeCloser != nil {
		defer func() {
			if err := storeCloser.Close(); err != nil {
				logger.Error("close storage", zap.Error(err))
			}
		}()
	}

	e, err := newEngine(cfg, logger, storage)
	if err != nil {
		return err
	}

	results, runErr := e.Run(ctx, feeds...)
	if err := printResults(w, results); err != nil {
		return err
	}

	return runErr
}

func printResults(w io.Writer, results []engine.Result) error {
	if jsonOut {
		sets := make(map[string]*rowparse.RecordSet, len(results))
		for _, r := range results {
			if r.Set != nil {
				sets[r.Feed.Name] = r.Set
			}
		}
		if len(results) == 1 {
			if results[0].Set == nil {
				return nil
			}
			return render.JSON(w, results[0].Set, limit)
		}
		return render.JSONMap(w, sets, limit)
	}

	for _, r := range results {
		if r.Set == nil {
			continue
		}
		fmt.Fprintf(w, "%s (%d records, %d rows skipped)\n", r.Feed.Title, r.Set.Len(), r.Report.Skipped)
		render.Table(w, r.Set, limit)
	}

	return nil
}
