package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"estatehub/internal/adapters/persistence/models"
	"estatehub/internal/adapters/persistence/repositories"
	"estatehub/internal/core/domain"
	"estatehub/internal/pkg/pagination"
)

type premiseFixture struct {
	db       *gorm.DB
	svc      *PremiseService
	tower    models.Building
	plaza    models.Building
	premises map[string]models.Premise
}

// newPremiseFixture seeds two buildings with a spread of premises:
//
//	tower: 101 (rent, 100k/50m2, floor 1), 102 (rent+sale, 200k/80m2,
//	       floor 2), 103 (rented), blank number (rent, 150k/60m2)
//	plaza: P1 (sale only, no price, 120m2)
func newPremiseFixture(t *testing.T) *premiseFixture {
	t.Helper()

	db := newTestDB(t)

	region := models.Region{Name: "Tatarstan", IsDefault: true}
	require.NoError(t, db.Create(&region).Error)
	city := models.City{Name: "Kazan", RegionID: region.ID, IsDefault: true}
	require.NoError(t, db.Create(&city).Error)

	tower := models.Building{Name: "Sunrise Tower", Address: "Lenina st, 10", CityID: city.ID}
	require.NoError(t, db.Create(&tower).Error)
	plaza := models.Building{Name: "Central Plaza", Address: "Pushkina st, 5", CityID: city.ID}
	require.NoError(t, db.Create(&plaza).Error)

	floor1 := models.Floor{BuildingID: tower.ID, Number: 1}
	require.NoError(t, db.Create(&floor1).Error)
	floor2 := models.Floor{BuildingID: tower.ID, Number: 2}
	require.NoError(t, db.Create(&floor2).Error)

	premises := map[string]models.Premise{
		"101": {
			CityID: city.ID, BuildingID: tower.ID, FloorID: &floor1.ID,
			Number: "101", Area: 50, PricePerMonth: floatPtr(100000),
			Status: models.PremiseStatusAvailable, AvailableForRent: true,
		},
		"102": {
			CityID: city.ID, BuildingID: tower.ID, FloorID: &floor2.ID,
			Number: "102", Area: 80, PricePerMonth: floatPtr(200000),
			Status: models.PremiseStatusAvailable, AvailableForRent: true, AvailableForSale: true,
		},
		"103": {
			CityID: city.ID, BuildingID: tower.ID, FloorID: &floor1.ID,
			Number: "103", Area: 55, PricePerMonth: floatPtr(90000),
			Status: models.PremiseStatusRented, AvailableForRent: true,
		},
		"blank": {
			CityID: city.ID, BuildingID: tower.ID, FloorID: &floor1.ID,
			Number: "", Area: 60, PricePerMonth: floatPtr(150000),
			Status: models.PremiseStatusAvailable, AvailableForRent: true,
		},
		"P1": {
			CityID: city.ID, BuildingID: plaza.ID,
			Number: "P1", Area: 120,
			Status: models.PremiseStatusAvailable, AvailableForSale: true,
		},
	}
	for key, p := range premises {
		p := p
		require.NoError(t, db.Create(&p).Error)
		premises[key] = p
	}

	return &premiseFixture{
		db:       db,
		svc:      NewPremiseService(repositories.NewPremiseRepository(db)),
		tower:    tower,
		plaza:    plaza,
		premises: premises,
	}
}

func defaultParams() pagination.Params {
	return pagination.Clamp(1, 20)
}

func TestPremiseService_List_DefaultAvailableOnly(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)

	result, err := fx.svc.List(context.Background(), domain.PremiseFilter{Available: true}, defaultParams())
	require.NoError(t, err)

	assert.EqualValues(t, 4, result.Total)
	for _, item := range result.Items {
		assert.False(t, item.HasTenant)
	}
}

func TestPremiseService_List_TakenOnly(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)

	result, err := fx.svc.List(context.Background(), domain.PremiseFilter{Available: false}, defaultParams())
	require.NoError(t, err)

	require.EqualValues(t, 1, result.Total)
	assert.Equal(t, "103", result.Items[0].Name)
	assert.True(t, result.Items[0].HasTenant)
}

func TestPremiseService_List_SaleType(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)
	ctx := context.Background()

	rent, err := fx.svc.List(ctx, domain.PremiseFilter{SaleType: domain.SaleTypeRent, Available: true}, defaultParams())
	require.NoError(t, err)
	assert.EqualValues(t, 3, rent.Total)

	sale, err := fx.svc.List(ctx, domain.PremiseFilter{SaleType: domain.SaleTypeSale, Available: true}, defaultParams())
	require.NoError(t, err)
	assert.EqualValues(t, 2, sale.Total)
}

func TestPremiseService_List_PriceRangeInclusive(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)

	filter := domain.PremiseFilter{
		Available: true,
		MinPrice:  floatPtr(100000),
		MaxPrice:  floatPtr(150000),
	}
	result, err := fx.svc.List(context.Background(), filter, defaultParams())
	require.NoError(t, err)

	// Both bounds inclusive: 100k and 150k rows match, 200k does not
	require.EqualValues(t, 2, result.Total)
}

func TestPremiseService_List_AreaRange(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)

	filter := domain.PremiseFilter{
		Available: true,
		MinArea:   floatPtr(80),
	}
	result, err := fx.svc.List(context.Background(), filter, defaultParams())
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.Total)
}

func TestPremiseService_List_BuildingTextSearch(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)
	ctx := context.Background()

	// Case-insensitive, matches address or name
	byAddress, err := fx.svc.List(ctx, domain.PremiseFilter{Available: true, BuildingQuery: "LENINA"}, defaultParams())
	require.NoError(t, err)
	assert.EqualValues(t, 3, byAddress.Total)

	byName, err := fx.svc.List(ctx, domain.PremiseFilter{Available: true, BuildingQuery: "plaza"}, defaultParams())
	require.NoError(t, err)
	assert.EqualValues(t, 1, byName.Total)
}

func TestPremiseService_List_BuildingUUIDs(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)

	filter := domain.PremiseFilter{Available: true, BuildingUUIDs: []string{fx.plaza.UUID}}
	result, err := fx.svc.List(context.Background(), filter, defaultParams())
	require.NoError(t, err)

	require.EqualValues(t, 1, result.Total)
	assert.Equal(t, "P1", result.Items[0].Name)
}

func TestPremiseService_List_OrderPriceDescWithPaging(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)
	ctx := context.Background()

	filter := domain.PremiseFilter{
		SaleType:  domain.SaleTypeRent,
		Available: true,
		OrderBy:   domain.OrderPriceDesc,
	}

	page2, err := fx.svc.List(ctx, filter, pagination.Clamp(2, 1))
	require.NoError(t, err)

	// Prices 200k, 150k, 100k: page 2 of size 1 is the 150k row
	assert.EqualValues(t, 3, page2.Total)
	require.Len(t, page2.Items, 1)
	require.NotNil(t, page2.Items[0].Price)
	assert.Equal(t, float64(150000), *page2.Items[0].Price)

	// Every row appears on exactly one page
	seen := map[string]bool{}
	for page := 1; ; page++ {
		result, err := fx.svc.List(ctx, filter, pagination.Clamp(page, 1))
		require.NoError(t, err)
		if len(result.Items) == 0 {
			break
		}
		for _, item := range result.Items {
			assert.False(t, seen[item.UUID])
			seen[item.UUID] = true
		}
	}
	assert.Len(t, seen, 3)
}

func TestPremiseService_List_TakenOrderedPriceDesc(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewPremiseService(repositories.NewPremiseRepository(db))
	ctx := context.Background()

	region := models.Region{Name: "Tatarstan"}
	require.NoError(t, db.Create(&region).Error)
	city := models.City{Name: "Kazan", RegionID: region.ID}
	require.NoError(t, db.Create(&city).Error)
	building := models.Building{Name: "Old Mill", Address: "Fabrichnaya st, 3", CityID: city.ID}
	require.NoError(t, db.Create(&building).Error)

	for i, price := range []float64{300000, 100000, 200000} {
		p := models.Premise{
			CityID: city.ID, BuildingID: building.ID,
			Number: string(rune('A' + i)), Area: 40,
			PricePerMonth: floatPtr(price),
			Status:        models.PremiseStatusRented, AvailableForRent: true,
		}
		require.NoError(t, db.Create(&p).Error)
	}

	filter := domain.PremiseFilter{Available: false, OrderBy: domain.OrderPriceDesc}
	result, err := svc.List(ctx, filter, pagination.Clamp(2, 1))
	require.NoError(t, err)

	// Second-highest price lands on page 2 of size 1
	assert.EqualValues(t, 3, result.Total)
	require.Len(t, result.Items, 1)
	require.NotNil(t, result.Items[0].Price)
	assert.Equal(t, float64(200000), *result.Items[0].Price)
}

func TestPremiseService_List_NameFallbackAndAddress(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)

	blank := fx.premises["blank"]
	filter := domain.PremiseFilter{Available: true, BuildingUUIDs: []string{fx.tower.UUID}}
	result, err := fx.svc.List(context.Background(), filter, defaultParams())
	require.NoError(t, err)

	var found *models.PremiseListItem
	for _, item := range result.Items {
		if item.UUID == blank.UUID {
			found = item
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Sunrise Tower", found.Name)
	assert.Equal(t, "Lenina st, 10", found.Address)
}

func TestPremiseService_GetByUUID(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)
	ctx := context.Background()

	available := fx.premises["102"]
	detail, err := fx.svc.GetByUUID(ctx, available.UUID)
	require.NoError(t, err)

	assert.Equal(t, "102", detail.Name)
	require.NotNil(t, detail.Floor)
	assert.Equal(t, 2, *detail.Floor)
	require.NotNil(t, detail.PricePerSqm)
	assert.InDelta(t, 2500, *detail.PricePerSqm, 0.01)
	assert.NotNil(t, detail.Media.Videos)
	assert.Empty(t, detail.Media.Videos)
}

func TestPremiseService_GetByUUID_HiddenWhenTaken(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)

	rented := fx.premises["103"]
	_, err := fx.svc.GetByUUID(context.Background(), rented.UUID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPremiseService_GetByUUID_Unknown(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)

	_, err := fx.svc.GetByUUID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPremiseService_PhotoOrdering(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)
	ctx := context.Background()

	target := fx.premises["101"]
	images := []models.PremiseImage{
		{PremiseID: target.ID, URL: "https://img/third.jpg", SortOrder: 2},
		{PremiseID: target.ID, URL: "https://img/first.jpg", SortOrder: 0, IsPrimary: true},
		{PremiseID: target.ID, URL: "https://img/second.jpg", SortOrder: 1},
	}
	require.NoError(t, fx.db.Create(&images).Error)

	detail, err := fx.svc.GetByUUID(ctx, target.UUID)
	require.NoError(t, err)

	require.Len(t, detail.Media.Photos, 3)
	assert.Equal(t, "https://img/first.jpg", detail.Media.Photos[0].URL)
	assert.True(t, detail.Media.Photos[0].IsPrimary)
	assert.Equal(t, "https://img/second.jpg", detail.Media.Photos[1].URL)
	assert.Equal(t, "https://img/third.jpg", detail.Media.Photos[2].URL)
}

func TestPremiseService_Buildings(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)
	ctx := context.Background()

	rentOptions, err := fx.svc.Buildings(ctx, domain.SaleTypeRent, true)
	require.NoError(t, err)
	require.Len(t, rentOptions, 1)
	assert.Equal(t, "Sunrise Tower", rentOptions[0].Name)

	saleOptions, err := fx.svc.Buildings(ctx, domain.SaleTypeSale, true)
	require.NoError(t, err)
	require.Len(t, saleOptions, 2)
	// Sorted by name
	assert.Equal(t, "Central Plaza", saleOptions[0].Name)
	assert.Equal(t, "Sunrise Tower", saleOptions[1].Name)
}

func TestPremiseRepository_RecomputeStalePricePerSqm(t *testing.T) {
	t.Parallel()

	fx := newPremiseFixture(t)
	ctx := context.Background()
	repo := repositories.NewPremiseRepository(fx.db)

	// Drift a stored value behind the hooks' back
	target := fx.premises["101"]
	require.NoError(t, fx.db.Model(&models.Premise{}).
		Where("id = ?", target.ID).
		UpdateColumn("price_per_sqm", 1.0).Error)

	fixed, err := repo.RecomputeStalePricePerSqm(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, fixed)

	var reloaded models.Premise
	require.NoError(t, fx.db.First(&reloaded, target.ID).Error)
	require.NotNil(t, reloaded.PricePerSqm)
	assert.InDelta(t, 2000, *reloaded.PricePerSqm, 0.01)

	// Second run finds nothing to do
	fixed, err = repo.RecomputeStalePricePerSqm(ctx)
	require.NoError(t, err)
	assert.Zero(t, fixed)
}
