package feed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dreamerjackson/moonbag/collect"
	"github.com/dreamerjackson/moonbag/engine"
	"github.com/dreamerjackson/moonbag/generator"
	"github.com/dreamerjackson/moonbag/limiter"
	"github.com/dreamerjackson/moonbag/log"
	"github.com/dreamerjackson/moonbag/proxy"
	"github.com/dreamerjackson/moonbag/rowparse"
	"github.com/dreamerjackson/moonbag/sqldb"
	"github.com/dreamerjackson/moonbag/sqlstorage"
	"github.com/go-micro/plugins/v4/config/encoder/toml"
	"go-micro.dev/v4/config"
	"go-micro.dev/v4/config/reader"
	"go-micro.dev/v4/config/reader/json"
	"go-micro.dev/v4/config/source"
	"go-micro.dev/v4/config/source/file"
	"go.uber.org/zap"
)

var configPath string

// loadConfig reads the toml file at path. A missing file leaves every
// key at its default.
func loadConfig(path string) (config.Config, error) {
	enc := toml.NewEncoder()
	cfg, err := config.NewConfig(config.WithReader(json.NewReader(reader.WithEncoder(enc))))
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	err = cfg.Load(file.NewSource(
		file.WithPath(path),
		source.WithEncoder(enc),
	))
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, io.Closer, error) {
	logText := cfg.Get("logLevel").String("INFO")
	logFile := cfg.Get("log", "file").String("")

	logger, closer, err := log.New(logText, logFile)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", logText, err)
	}
	zap.ReplaceGlobals(logger)

	return logger, closer, nil
}

func policyOf(cfg config.Config) (rowparse.Policy, error) {
	policyText := cfg.Get("engine", "policy").String("skip")
	policy, ok := rowparse.ParsePolicy(policyText)
	if !ok {
		return policy, fmt.Errorf("unknown engine.policy %q", policyText)
	}

	return policy, nil
}

func rowOptions(cfg config.Config) ([]rowparse.Option, error) {
	policy, err := policyOf(cfg)
	if err != nil {
		return nil, err
	}

	return []rowparse.Option{
		rowparse.WithPolicy(policy),
		rowparse.WithWorkers(cfg.Get("engine", "rowWorkers").Int(1)),
	}, nil
}

func newFetcher(cfg config.Config, logger *zap.Logger) collect.Fetcher {
	proxyURLs := cfg.Get("fetcher", "proxy").StringSlice([]string{})
	timeout := cfg.Get("fetcher", "timeout").Int(5000)
	retries := cfg.Get("fetcher", "retries").Int(1)
	cacheTTL := cfg.Get("fetcher", "cacheTTL").Int(600)
	logger.Sugar().Debug("proxy list: ", proxyURLs, " timeout: ", timeout)

	var limits []limiter.Config
	if err := cfg.Get("fetcher", "limits").Scan(&limits); err != nil {
		logger.Error("read fetcher limits", zap.Error(err))
	}

	var p proxy.Func
	if len(proxyURLs) > 0 {
		var err error
		if p, err = proxy.RoundRobinProxySwitcher(proxyURLs...); err != nil {
			logger.Error("RoundRobinProxySwitcher failed", zap.Error(err))
		}
	}

	var f collect.Fetcher = collect.BrowserFetch{
		Timeout: time.Duration(timeout) * time.Millisecond,
		Proxy:   p,
		Limit:   limiter.New(limits...),
		Retries: retries,
		Logger:  logger.Named("fetcher"),
	}
	if cacheTTL > 0 {
		f = collect.NewCacheFetch(f, time.Duration(cacheTTL)*time.Second)
	}

	return f
}

func newStorage(cfg config.Config, logger *zap.Logger) (engine.Storage, io.Closer, error) {
	storeType := cfg.Get("storage", "type").String("empty")
	switch storeType {
	case "", "empty":
		logger.Debug("start empty storage")
		return engine.EmptyStorage{}, nil, nil
	case sqldb.MySQL, sqldb.SQLite:
		s, err := sqlstorage.New(
			sqlstorage.WithDriver(storeType),
			sqlstorage.WithSQLURL(cfg.Get("storage", "sqlURL").String("")),
			sqlstorage.WithLogger(logger.Named("sqlDB")),
			sqlstorage.WithBatchCount(cfg.Get("storage", "batchCount").Int(100)),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("create sqlstorage: %w", err)
		}
		logger.Info("start sql storage", zap.String("driver", storeType))
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage.type %q", storeType)
	}
}

func newEngine(cfg config.Config, logger *zap.Logger, storage engine.Storage) (*engine.Engine, error) {
	policy, err := policyOf(cfg)
	if err != nil {
		return nil, err
	}

	opts := []engine.Option{
		engine.WithFetcher(newFetcher(cfg, logger)),
		engine.WithStorage(storage),
		engine.WithLogger(logger.Named("engine")),
		engine.WithWorkCount(cfg.Get("engine", "workers").Int(4)),
		engine.WithRowWorkers(cfg.Get("engine", "rowWorkers").Int(1)),
		engine.WithPolicy(policy),
	}

	ip, err := generator.LocalIP()
	if err != nil {
		logger.Debug("no local ip for run ids", zap.Error(err))
	}
	if node, err := generator.NewNode(ip); err == nil {
		opts = append(opts, engine.WithIDNode(node))
	}

	return engine.New(opts...)
}
