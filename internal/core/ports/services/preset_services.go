package services

import (
	"context"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
)

// PresetReaderSvc defines read operations for presets
type PresetReaderSvc interface {
	GetPresetByID(ctx context.Context, presetID string) (*domain.Preset, error)
	ListPresets(ctx context.Context, limit int, offset int) ([]domain.Preset, error)

	// ResolvePlan returns the plan a preset posts into, or apperrors.ErrUnboundPreset.
	ResolvePlan(ctx context.Context, presetID string) (string, error)

	// ResolvePresetPlan loads a preset, checks its accounts still share one plan and returns both.
	// An unbound preset is returned together with apperrors.ErrUnboundPreset.
	ResolvePresetPlan(ctx context.Context, presetID string) (*domain.Preset, string, error)
}

// PresetWriterSvc defines write operations for presets
type PresetWriterSvc interface {
	CreatePreset(ctx context.Context, req dto.CreatePresetRequest, userID string) (*domain.Preset, error)
	UpdatePreset(ctx context.Context, presetID string, req dto.UpdatePresetRequest, userID string) (*domain.Preset, error)
}

// PresetSvcFacade combines all preset-related service interfaces
type PresetSvcFacade interface {
	PresetReaderSvc
	PresetWriterSvc
}
