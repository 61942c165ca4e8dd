package di

import (
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/deliverability-scorer/internal/config"
	"github.com/mikey/deliverability-scorer/internal/core"
	"github.com/mikey/deliverability-scorer/internal/factory"
	"github.com/mikey/deliverability-scorer/internal/ports"
	"github.com/mikey/deliverability-scorer/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
// around an already loaded configuration and logger.
func BuildContainer(cfg *config.Config, logger *zap.Logger) (*dig.Container, error) {
	container := dig.New()

	// Register configuration and logger
	if err := container.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() *zap.Logger { return logger }); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewDictionaryFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewReporterFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}

	// Register dictionary
	if err := container.Provide(func(f *factory.DictionaryFactory) (*core.Dictionary, error) {
		return f.CreateDictionary()
	}); err != nil {
		return nil, err
	}

	// Register score cache
	if err := container.Provide(func(f *factory.CacheFactory) (core.ScoreCache, error) {
		return f.CreateScoreCache()
	}); err != nil {
		return nil, err
	}

	// Register cache TTL and enabled flag
	if err := container.Provide(func(f *factory.CacheFactory) (time.Duration, error) {
		return f.GetCacheTTL()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.CacheFactory) bool {
		return f.IsCacheEnabled()
	}); err != nil {
		return nil, err
	}

	// Register scoring service
	if err := container.Provide(core.NewScoringService); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register reporter
	if err := container.Provide(func(f *factory.ReporterFactory) (ports.Reporter, error) {
		return f.CreateReporter()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
