package repositories

import (
	"context"
	"strings"

	"estatehub/internal/adapters/persistence/models"
	"estatehub/internal/core/domain"

	"gorm.io/gorm"
)

// premiseRepository implements PremiseRepository interface
type premiseRepository struct {
	db *gorm.DB
}

// NewPremiseRepository creates a new premise repository
func NewPremiseRepository(db *gorm.DB) PremiseRepository {
	return &premiseRepository{db: db}
}

var takenStatuses = []string{
	models.PremiseStatusReserved,
	models.PremiseStatusRented,
	models.PremiseStatusUnavailable,
}

// filtered builds the WHERE clause for a search. Building and floor are
// left-joined once: the text filter and the default sort both need them.
func (r *premiseRepository) filtered(ctx context.Context, f domain.PremiseFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Premise{}).
		Joins("LEFT JOIN re_buildings ON re_buildings.id = re_premises.building_id").
		Joins("LEFT JOIN re_floors ON re_floors.id = re_premises.floor_id")

	if f.Available {
		q = q.Where("re_premises.status = ?", models.PremiseStatusAvailable)
	} else {
		q = q.Where("re_premises.status IN ?", takenStatuses)
	}

	switch f.SaleType {
	case domain.SaleTypeRent:
		q = q.Where("re_premises.available_for_rent = ?", true)
	case domain.SaleTypeSale:
		q = q.Where("re_premises.available_for_sale = ?", true)
	}

	if f.BuildingQuery != "" {
		pattern := "%" + strings.ToLower(f.BuildingQuery) + "%"
		q = q.Where("LOWER(re_buildings.address) LIKE ? OR LOWER(re_buildings.name) LIKE ?", pattern, pattern)
	}
	if len(f.BuildingUUIDs) > 0 {
		q = q.Where("re_buildings.uuid IN ?", f.BuildingUUIDs)
	}

	if f.MinPrice != nil {
		q = q.Where("re_premises.price_per_month >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("re_premises.price_per_month <= ?", *f.MaxPrice)
	}
	if f.MinArea != nil {
		q = q.Where("re_premises.area >= ?", *f.MinArea)
	}
	if f.MaxArea != nil {
		q = q.Where("re_premises.area <= ?", *f.MaxArea)
	}

	return q
}

// orderClause maps an order key to SQL. The row id is always the final
// tie-break so no item can straddle two pages.
func orderClause(orderBy string) string {
	switch orderBy {
	case domain.OrderPriceAsc:
		return "re_premises.price_per_month, re_premises.id"
	case domain.OrderPriceDesc:
		return "re_premises.price_per_month DESC, re_premises.id"
	case domain.OrderAreaAsc:
		return "re_premises.area, re_premises.id"
	case domain.OrderAreaDesc:
		return "re_premises.area DESC, re_premises.id"
	default:
		return "re_premises.city_id, re_premises.building_id, re_floors.number, re_premises.number, re_premises.id"
	}
}

// List returns one page of filtered premises plus the total count over
// the whole filtered set.
func (r *premiseRepository) List(ctx context.Context, f domain.PremiseFilter, offset, limit int) ([]*models.Premise, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var premises []*models.Premise
	err := r.filtered(ctx, f).
		Preload("Building").
		Preload("Floor").
		Preload("Images").
		Order(orderClause(f.OrderBy)).
		Offset(offset).
		Limit(limit).
		Find(&premises).Error
	if err != nil {
		return nil, 0, err
	}

	return premises, total, nil
}

// GetAvailableByUUID returns one premise by public id, restricted to
// status=available. Anything else is "not currently offered".
func (r *premiseRepository) GetAvailableByUUID(ctx context.Context, uuid string) (*models.Premise, error) {
	var premise models.Premise
	err := r.db.WithContext(ctx).
		Preload("Building").
		Preload("Floor").
		Preload("Images").
		Where("uuid = ? AND status = ?", uuid, models.PremiseStatusAvailable).
		First(&premise).Error
	if err != nil {
		return nil, err
	}
	return &premise, nil
}

// BuildingsForFilter lists buildings having at least one premise
// matching the sale-type/availability pair, for the search multiselect.
func (r *premiseRepository) BuildingsForFilter(ctx context.Context, saleType domain.SaleType, available bool) ([]models.BuildingOption, error) {
	sub := r.db.Model(&models.Premise{}).Select("building_id")
	if available {
		sub = sub.Where("status = ?", models.PremiseStatusAvailable)
	} else {
		sub = sub.Where("status IN ?", takenStatuses)
	}
	switch saleType {
	case domain.SaleTypeRent:
		sub = sub.Where("available_for_rent = ?", true)
	case domain.SaleTypeSale:
		sub = sub.Where("available_for_sale = ?", true)
	}

	var options []models.BuildingOption
	err := r.db.WithContext(ctx).Model(&models.Building{}).
		Select("uuid, name, address").
		Where("id IN (?)", sub).
		Order("name").
		Find(&options).Error
	return options, err
}

// RecomputeStalePricePerSqm re-derives price_per_sqm for rows whose
// stored value drifted from price/area (rows mutated outside the API).
// Returns the number of rows fixed.
func (r *premiseRepository) RecomputeStalePricePerSqm(ctx context.Context) (int64, error) {
	var stale []*models.Premise
	err := r.db.WithContext(ctx).
		Where("(price_per_month IS NULL AND price_per_sqm IS NOT NULL) OR " +
			"(price_per_month IS NOT NULL AND area > 0 AND " +
			"(price_per_sqm IS NULL OR ABS(price_per_sqm - price_per_month / area) > 0.01))").
		Find(&stale).Error
	if err != nil {
		return 0, err
	}

	for _, p := range stale {
		// Save runs BeforeSave, which recomputes the derived value.
		if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
			return 0, err
		}
	}
	return int64(len(stale)), nil
}
