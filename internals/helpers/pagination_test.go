package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	paging := resolveFor(t, "/items")
	assert.Equal(t, 1, paging.Page)
	assert.Equal(t, 20, paging.PerPage)
	assert.Equal(t, 0, paging.Offset)
	assert.Equal(t, 20, paging.Limit)
}

func TestResolvePagingOffset(t *testing.T) {
	paging := resolveFor(t, "/items?page=3&per_page=10")
	assert.Equal(t, 3, paging.Page)
	assert.Equal(t, 20, paging.Offset)
	assert.Equal(t, 10, paging.Limit)
}

func TestResolvePagingClampsAndFallsBack(t *testing.T) {
	paging := resolveFor(t, "/items?page=-4&per_page=9999")
	assert.Equal(t, 1, paging.Page)
	assert.Equal(t, 100, paging.PerPage)

	paging = resolveFor(t, "/items?per_page=abc")
	assert.Equal(t, 20, paging.PerPage)
}

func TestResolvePagingLimitAlias(t *testing.T) {
	paging := resolveFor(t, "/items?limit=5")
	assert.Equal(t, 5, paging.PerPage)
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(95, 2, 20)
	assert.Equal(t, int64(95), p.Total)
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPagination(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
