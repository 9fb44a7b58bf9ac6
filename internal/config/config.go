package config

import (
	"flag"
	"os"
	"strconv"

	"go.uber.org/zap"
)

type Config struct {
	RunAddress   string
	SplitCeiling int64 // currency units
	SplitFloor   int64 // currency units
	MakeupItem   string
	Logger       *zap.SugaredLogger
}

func NewConfig() *Config {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stdout", "server.log"}

	logger := zap.Must(logCfg.Build())

	cfg := &Config{}
	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "HTTP server address")
	flag.Int64Var(&cfg.SplitCeiling, "c", 300, "max sub-order amount, currency units")
	flag.Int64Var(&cfg.SplitFloor, "f", 200, "min random sub-order amount, currency units")
	flag.StringVar(&cfg.MakeupItem, "m", "make-up service", "name of the synthetic make-up line item")
	flag.Parse()

	cfg.Logger = logger.Sugar()

	ReadServerEnvironment(cfg)

	return cfg
}

func ReadServerEnvironment(cfg *Config) {
	if runAddress := os.Getenv("RUN_ADDRESS"); runAddress != "" {
		cfg.RunAddress = runAddress
	}

	if ceiling := os.Getenv("SPLIT_CEILING"); ceiling != "" {
		if v, err := strconv.ParseInt(ceiling, 10, 64); err == nil && v > 0 {
			cfg.SplitCeiling = v
		}
	}

	if floor := os.Getenv("SPLIT_FLOOR"); floor != "" {
		if v, err := strconv.ParseInt(floor, 10, 64); err == nil && v > 0 {
			cfg.SplitFloor = v
		}
	}

	if makeup := os.Getenv("MAKEUP_ITEM"); makeup != "" {
		cfg.MakeupItem = makeup
	}
}
