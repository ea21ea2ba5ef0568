package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bdas-dva/retail-api/internal/domain"
)

// pathInt64 parses a path parameter; unparsable values are a validation error.
func pathInt64(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidation("neplatný parametr %s: %q", name, raw)
	}
	return n, nil
}

// queryInt64 parses an optional numeric query parameter.
func queryInt64(c *fiber.Ctx, name string, def int64) (int64, error) {
	return queryInt(c, name, def, 64)
}

// queryInt32 is queryInt64 for int32 parameters such as limit; values that
// do not fit are rejected rather than truncated.
func queryInt32(c *fiber.Ctx, name string, def int32) (int32, error) {
	n, err := queryInt(c, name, int64(def), 32)
	return int32(n), err
}

func queryInt(c *fiber.Ctx, name string, def int64, bits int) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, bits)
	if err != nil {
		return 0, domain.NewValidation("neplatný parametr %s: %q", name, raw)
	}
	return n, nil
}
