package factory

import (
	"errors"
	"fmt"

	"github.com/mikey/deliverability-scorer/internal/adapters/report"
	"github.com/mikey/deliverability-scorer/internal/config"
	"github.com/mikey/deliverability-scorer/internal/ports"
	"go.uber.org/zap"
)

// ErrUnsupportedFormat is returned for an unknown output format
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ReporterFactory creates reporters based on configuration
type ReporterFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewReporterFactory creates a new reporter factory
func NewReporterFactory(cfg *config.Config, logger *zap.Logger) *ReporterFactory {
	return &ReporterFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateReporter creates a reporter for the configured output format
func (f *ReporterFactory) CreateReporter() (ports.Reporter, error) {
	output := f.cfg.GetOutput()

	switch output.Format {
	case "text":
		return report.NewTextReporter(f.logger, output.Color), nil
	case "json":
		return report.NewJSONReporter(f.logger, true), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, output.Format)
	}
}
