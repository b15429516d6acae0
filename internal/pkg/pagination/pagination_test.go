package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     int
		size     int
		wantPage int
		wantSize int
	}{
		{name: "defaults pass through", page: 1, size: 20, wantPage: 1, wantSize: 20},
		{name: "zero page becomes one", page: 0, size: 20, wantPage: 1, wantSize: 20},
		{name: "negative page becomes one", page: -5, size: 20, wantPage: 1, wantSize: 20},
		{name: "zero size becomes one", page: 1, size: 0, wantPage: 1, wantSize: 1},
		{name: "oversized capped", page: 1, size: 500, wantPage: 1, wantSize: MaxPageSize},
		{name: "max size allowed", page: 3, size: 100, wantPage: 3, wantSize: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := Clamp(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.PageSize)
		})
	}
}

func TestOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Params{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 20, Params{Page: 2, PageSize: 20}.Offset())
	assert.Equal(t, 45, Params{Page: 10, PageSize: 5}.Offset())
}
