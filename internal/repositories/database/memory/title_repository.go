package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
)

type titleRepository struct {
	store *Store
}

var _ portsrepo.TitleRepositoryFacade = (*titleRepository)(nil)

func (r *titleRepository) FindTitleByID(ctx context.Context, titleID string) (*domain.Title, error) {
	var (
		title domain.Title
		ok    bool
	)
	r.store.read(ctx, func(t *tables) {
		title, ok = t.titles[titleID]
		title = copyTitle(title)
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &title, nil
}

// FindTitleByIDForUpdate is FindTitleByID: units of work are already serialised.
func (r *titleRepository) FindTitleByIDForUpdate(ctx context.Context, titleID string) (*domain.Title, error) {
	return r.FindTitleByID(ctx, titleID)
}

func (r *titleRepository) ListTitlesByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Title, error) {
	var out []domain.Title
	r.store.read(ctx, func(t *tables) {
		for _, title := range t.titles {
			if title.CompanyID == companyID {
				out = append(out, copyTitle(title))
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].TitleID < out[j].TitleID
		}
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return page(out, limit, offset), nil
}

func (r *titleRepository) SaveTitle(ctx context.Context, title domain.Title) error {
	return r.store.write(ctx, func(t *tables) error {
		if _, ok := t.titles[title.TitleID]; ok {
			return fmt.Errorf("%w: title with ID %s already exists", apperrors.ErrDuplicate, title.TitleID)
		}
		if title.PresetID != "" {
			if _, ok := t.presets[title.PresetID]; !ok {
				return fmt.Errorf("%w: preset %s", apperrors.ErrNotFound, title.PresetID)
			}
		}
		t.titles[title.TitleID] = copyTitle(title)
		return nil
	})
}

func (r *titleRepository) UpdateTitle(ctx context.Context, title domain.Title) error {
	return r.store.write(ctx, func(t *tables) error {
		if _, ok := t.titles[title.TitleID]; !ok {
			return apperrors.ErrNotFound
		}
		t.titles[title.TitleID] = copyTitle(title)
		return nil
	})
}
