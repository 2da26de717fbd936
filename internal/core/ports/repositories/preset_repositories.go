package repositories

import (
	"context"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
)

// PresetReader defines read operations for preset data
type PresetReader interface {
	FindPresetByID(ctx context.Context, presetID string) (*domain.Preset, error)
	ListPresets(ctx context.Context, limit int, offset int) ([]domain.Preset, error)
}

// PresetWriter defines write operations for preset data
type PresetWriter interface {
	SavePreset(ctx context.Context, preset domain.Preset) error
	UpdatePreset(ctx context.Context, preset domain.Preset) error
}

// PresetRepositoryFacade combines all preset-related repository interfaces
type PresetRepositoryFacade interface {
	PresetReader
	PresetWriter
}
