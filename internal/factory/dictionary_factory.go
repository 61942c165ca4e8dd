package factory

import (
	"github.com/mikey/deliverability-scorer/internal/adapters/rules"
	"github.com/mikey/deliverability-scorer/internal/config"
	"github.com/mikey/deliverability-scorer/internal/core"
	"go.uber.org/zap"
)

// DictionaryFactory builds the phrase dictionary used for scoring
type DictionaryFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewDictionaryFactory creates a new dictionary factory
func NewDictionaryFactory(cfg *config.Config, logger *zap.Logger) *DictionaryFactory {
	return &DictionaryFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateDictionary returns the built-in dictionary, extended with the
// configured rule file if there is one.
func (f *DictionaryFactory) CreateDictionary() (*core.Dictionary, error) {
	path := f.cfg.GetScoring().RulesFile
	if path == "" {
		return core.DefaultDictionary(), nil
	}

	extra, err := rules.LoadFile(path)
	if err != nil {
		return nil, err
	}

	dict := core.NewDictionary(append(core.BuiltinRules(), extra)...)
	f.logger.Info("Loaded custom phrase rules",
		zap.String("file", path),
		zap.Int("rules", len(extra)),
		zap.Int("dictionary_size", dict.Len()))
	return dict, nil
}
