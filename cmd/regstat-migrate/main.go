// Command regstat-migrate применяет схему хранилища регистраций. Сервис
// отчётов схему не создаёт; это шаг развёртывания.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ougirez/regstat/internal/pkg/config"
	"github.com/ougirez/regstat/internal/pkg/logger"
	"github.com/ougirez/regstat/internal/pkg/migration"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to config file")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: regstat-migrate [-c config] up|down|version\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := run(ctx, *configPath, pflag.Arg(0)); err != nil {
		logger.Errorf(ctx, "regstat-migrate: %s", err.Error())
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(ctx context.Context, configPath, command string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}

	runner, err := migration.New(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := runner.Close(); err != nil {
			logger.Warnf(ctx, "close migrator: %s", err.Error())
		}
	}()

	switch command {
	case "up":
		err = runner.Up()
	case "down":
		err = runner.Down()
	case "version":
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		return err
	}

	version, dirty, err := runner.Version()
	if err != nil {
		return err
	}
	logger.Info(ctx, "schema version", "driver", cfg.DBDriver, "version", version, "dirty", dirty)
	return nil
}
