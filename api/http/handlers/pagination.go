package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// pageParams читает ?limit&offset. Мусор даёт значения по умолчанию,
// слишком большой limit обрезается до maxPageLimit.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = queryInt(c, "limit", defaultPageLimit)
	switch {
	case limit <= 0:
		limit = defaultPageLimit
	case limit > maxPageLimit:
		limit = maxPageLimit
	}
	offset = max(queryInt(c, "offset", 0), 0)
	return limit, offset
}

func queryInt(c *fiber.Ctx, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}
