package handlers

import (
	"errors"
	"strconv"
	"strings"

	"estatehub/internal/core/domain"
	"estatehub/internal/core/services"
	"estatehub/internal/pkg/pagination"
	"estatehub/internal/pkg/problem"

	"github.com/gofiber/fiber/v2"
)

// PremiseHandler handles premise search endpoints
type PremiseHandler struct {
	premiseService *services.PremiseService
}

// NewPremiseHandler creates a new premise handler
func NewPremiseHandler(premiseService *services.PremiseService) *PremiseHandler {
	return &PremiseHandler{premiseService: premiseService}
}

// List searches premises with the full filter set
// @Summary Search premises
// @Description Paginated premise search with price, area, building and availability filters
// @Tags Premises
// @Produce json
// @Param sale_type query string false "rent or sale"
// @Param available query bool false "true keeps only available premises (default true)"
// @Param building query string false "substring match on building address or name"
// @Param building_uuids query string false "comma-separated building uuids"
// @Param min_price query number false "inclusive lower price bound"
// @Param max_price query number false "inclusive upper price bound"
// @Param min_area query number false "inclusive lower area bound"
// @Param max_area query number false "inclusive upper area bound"
// @Param order_by query string false "default, price_asc, price_desc, area_asc, area_desc"
// @Param page query int false "page number"
// @Param page_size query int false "items per page (max 100)"
// @Success 200 {object} services.PremiseListResponse
// @Router /premises [get]
func (h *PremiseHandler) List(c *fiber.Ctx) error {
	return h.list(c, "")
}

// ListRent searches rentable premises
// @Summary Search premises for rent
// @Tags Premises
// @Produce json
// @Success 200 {object} services.PremiseListResponse
// @Router /premises/rent [get]
func (h *PremiseHandler) ListRent(c *fiber.Ctx) error {
	return h.list(c, domain.SaleTypeRent)
}

// ListSale searches purchasable premises
// @Summary Search premises for sale
// @Tags Premises
// @Produce json
// @Success 200 {object} services.PremiseListResponse
// @Router /premises/sale [get]
func (h *PremiseHandler) ListSale(c *fiber.Ctx) error {
	return h.list(c, domain.SaleTypeSale)
}

func (h *PremiseHandler) list(c *fiber.Ctx, forced domain.SaleType) error {
	filter := h.parseFilter(c)
	if forced != "" {
		filter.SaleType = forced
	}

	result, err := h.premiseService.List(c.Context(), filter, pagination.GetParams(c))
	if err != nil {
		return problem.InternalServerError(c)
	}
	return c.JSON(result)
}

// Buildings lists buildings usable as filter options
// @Summary List buildings holding matching premises
// @Tags Premises
// @Produce json
// @Param sale_type query string false "rent or sale"
// @Param available query bool false "availability filter (default true)"
// @Success 200 {array} models.BuildingOption
// @Router /premises/buildings [get]
func (h *PremiseHandler) Buildings(c *fiber.Ctx) error {
	saleType := parseSaleType(c.Query("sale_type"))
	available := parseAvailable(c.Query("available"))

	options, err := h.premiseService.Buildings(c.Context(), saleType, available)
	if err != nil {
		return problem.InternalServerError(c)
	}
	return c.JSON(options)
}

// Detail returns a single available premise by its public uuid
// @Summary Get premise detail
// @Tags Premises
// @Produce json
// @Param uuid path string true "premise uuid"
// @Success 200 {object} models.PremiseDetail
// @Failure 404 {object} problem.Detail
// @Router /premises/{uuid} [get]
func (h *PremiseHandler) Detail(c *fiber.Ctx) error {
	uuid := c.Params("uuid")

	detail, err := h.premiseService.GetByUUID(c.Context(), uuid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return problem.NotFound(c, problem.CodePremiseNotFound, "Not found", "Premise not found")
		}
		return problem.InternalServerError(c)
	}
	return c.JSON(detail)
}

func (h *PremiseHandler) parseFilter(c *fiber.Ctx) domain.PremiseFilter {
	return domain.PremiseFilter{
		SaleType:      parseSaleType(c.Query("sale_type")),
		Available:     parseAvailable(c.Query("available")),
		BuildingQuery: strings.TrimSpace(c.Query("building")),
		BuildingUUIDs: domain.ParseBuildingUUIDs(c.Query("building_uuids")),
		MinPrice:      parseFloat(c.Query("min_price")),
		MaxPrice:      parseFloat(c.Query("max_price")),
		MinArea:       parseFloat(c.Query("min_area")),
		MaxArea:       parseFloat(c.Query("max_area")),
		OrderBy:       c.Query("order_by", domain.OrderDefault),
	}
}

func parseSaleType(value string) domain.SaleType {
	switch domain.SaleType(strings.ToLower(strings.TrimSpace(value))) {
	case domain.SaleTypeRent:
		return domain.SaleTypeRent
	case domain.SaleTypeSale:
		return domain.SaleTypeSale
	default:
		return ""
	}
}

// parseAvailable defaults to true; anything but an explicit false keeps
// the available-only view.
func parseAvailable(value string) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return true
	}
	return parsed
}

func parseFloat(value string) *float64 {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
