package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPagination(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func resolveVia(t *testing.T, target string) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	p := resolveVia(t, "/x")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)

	p = resolveVia(t, "/x?page=3&per_page=10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)

	// legacy alias and the cap
	p = resolveVia(t, "/x?limit=500")
	assert.Equal(t, 100, p.PerPage)

	p = resolveVia(t, "/x?page=-2")
	assert.Equal(t, 1, p.Page)
}
