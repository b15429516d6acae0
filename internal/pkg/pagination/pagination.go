package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// DefaultPageSize is the default number of items per page
const DefaultPageSize = 20

// MaxPageSize is the maximum number of items per page
const MaxPageSize = 100

// Params represents clamped pagination parameters
type Params struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// GetParams extracts page/page_size from the request query, clamping
// page to >=1 and page_size to 1..MaxPageSize.
func GetParams(c *fiber.Ctx) Params {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	size, _ := strconv.Atoi(c.Query("page_size", strconv.Itoa(DefaultPageSize)))
	return Clamp(page, size)
}

// Clamp normalizes raw page/page_size values.
func Clamp(page, size int) Params {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Params{Page: page, PageSize: size}
}

// Offset returns the number of rows to skip for the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}
