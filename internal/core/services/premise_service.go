package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"estatehub/internal/adapters/persistence/models"
	"estatehub/internal/adapters/persistence/repositories"
	"estatehub/internal/core/domain"
	"estatehub/internal/pkg/pagination"
)

// PremiseService handles premise search and detail reads
type PremiseService struct {
	premiseRepo repositories.PremiseRepository
}

// NewPremiseService creates a new premise service
func NewPremiseService(premiseRepo repositories.PremiseRepository) *PremiseService {
	return &PremiseService{premiseRepo: premiseRepo}
}

// PremiseListResponse is the paginated search result
type PremiseListResponse struct {
	Items    []*models.PremiseListItem `json:"items"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

// List runs the filtered search. Total counts every match, independent
// of the page actually returned.
func (s *PremiseService) List(ctx context.Context, filter domain.PremiseFilter, p pagination.Params) (*PremiseListResponse, error) {
	premises, total, err := s.premiseRepo.List(ctx, filter, p.Offset(), p.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list premises: %w", err)
	}

	items := make([]*models.PremiseListItem, 0, len(premises))
	for _, premise := range premises {
		items = append(items, premise.ToListItem())
	}

	return &PremiseListResponse{
		Items:    items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

// GetByUUID returns the detail projection. Only available premises are
// visible; everything else reads as not found.
func (s *PremiseService) GetByUUID(ctx context.Context, uuid string) (*models.PremiseDetail, error) {
	premise, err := s.premiseRepo.GetAvailableByUUID(ctx, uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load premise: %w", err)
	}
	return premise.ToDetail(), nil
}

// Buildings lists the buildings that currently hold at least one
// premise matching the sale-type filter, for filter dropdowns.
func (s *PremiseService) Buildings(ctx context.Context, saleType domain.SaleType, available bool) ([]models.BuildingOption, error) {
	options, err := s.premiseRepo.BuildingsForFilter(ctx, saleType, available)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}
	return options, nil
}
