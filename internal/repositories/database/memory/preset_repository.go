package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
)

type presetRepository struct {
	store *Store
}

var _ portsrepo.PresetRepositoryFacade = (*presetRepository)(nil)

func (r *presetRepository) FindPresetByID(ctx context.Context, presetID string) (*domain.Preset, error) {
	var (
		preset domain.Preset
		ok     bool
	)
	r.store.read(ctx, func(t *tables) { preset, ok = t.presets[presetID] })
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &preset, nil
}

func (r *presetRepository) ListPresets(ctx context.Context, limit int, offset int) ([]domain.Preset, error) {
	var out []domain.Preset
	r.store.read(ctx, func(t *tables) {
		for _, p := range t.presets {
			out = append(out, p)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r *presetRepository) SavePreset(ctx context.Context, preset domain.Preset) error {
	return r.store.write(ctx, func(t *tables) error {
		if _, ok := t.presets[preset.PresetID]; ok {
			return fmt.Errorf("%w: preset with ID %s already exists", apperrors.ErrDuplicate, preset.PresetID)
		}
		t.presets[preset.PresetID] = preset
		return nil
	})
}

func (r *presetRepository) UpdatePreset(ctx context.Context, preset domain.Preset) error {
	return r.store.write(ctx, func(t *tables) error {
		if _, ok := t.presets[preset.PresetID]; !ok {
			return apperrors.ErrNotFound
		}
		t.presets[preset.PresetID] = preset
		return nil
	})
}
