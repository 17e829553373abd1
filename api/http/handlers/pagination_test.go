package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageParams(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		limit, offset := pageParams(c)
		return c.SendString(fmt.Sprintf("%d/%d", limit, offset))
	})

	cases := []struct {
		query string
		want  string
	}{
		{"", "50/0"},
		{"?limit=10&offset=5", "10/5"},
		{"?limit=1000", "200/0"},
		{"?limit=0&offset=-3", "50/0"},
		{"?limit=abc&offset=x", "50/0"},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+tc.query, nil))
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(body))
		})
	}
}
