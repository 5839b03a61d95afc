// handlers/params.go
package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"partidas-service/models"
	"partidas-service/services"

	"github.com/gofiber/fiber/v2"
)

// parseCriteria reads the `<field>.<operator>` query parameters.
func parseCriteria(c *fiber.Ctx) (models.PartidaCriteria, error) {
	var crit models.PartidaCriteria
	var err error

	if crit.ID, err = parseIntFilter(c, "id"); err != nil {
		return crit, err
	}
	crit.Ganador = parseStringFilter(c, "ganador")
	crit.Perdedor = parseStringFilter(c, "perdedor")
	if crit.PuntosDelGanador, err = parseIntFilter(c, "puntosDelGanador"); err != nil {
		return crit, err
	}
	return crit, nil
}

func parseStringFilter(c *fiber.Ctx, field string) models.StringFilter {
	args := c.Context().QueryArgs()
	var f models.StringFilter
	if args.Has(field + ".equals") {
		v := string(args.Peek(field + ".equals"))
		f.Equals = &v
	}
	if args.Has(field + ".contains") {
		v := string(args.Peek(field + ".contains"))
		f.Contains = &v
	}
	for _, raw := range args.PeekMulti(field + ".in") {
		f.In = append(f.In, splitList(string(raw))...)
	}
	return f
}

func parseIntFilter(c *fiber.Ctx, field string) (models.IntFilter, error) {
	args := c.Context().QueryArgs()
	var f models.IntFilter

	single := []struct {
		op  string
		dst **int64
	}{
		{"equals", &f.Equals},
		{"greaterThan", &f.GreaterThan},
		{"lessThan", &f.LessThan},
		{"greaterThanOrEqual", &f.GreaterThanOrEqual},
		{"lessThanOrEqual", &f.LessThanOrEqual},
	}
	for _, s := range single {
		key := field + "." + s.op
		if !args.Has(key) {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(string(args.Peek(key))), 10, 64)
		if err != nil {
			return f, services.BadRequest(fmt.Sprintf("Invalid value for %s", key), services.KeyCriteriaInvalid)
		}
		*s.dst = &n
	}

	for _, raw := range args.PeekMulti(field + ".in") {
		for _, item := range splitList(string(raw)) {
			n, err := strconv.ParseInt(item, 10, 64)
			if err != nil {
				return f, services.BadRequest(fmt.Sprintf("Invalid value for %s.in", field), services.KeyCriteriaInvalid)
			}
			f.In = append(f.In, n)
		}
	}
	return f, nil
}

// parsePageable reads page, size and the repeatable sort=field[,dir].
func parsePageable(c *fiber.Ctx) (models.Pageable, error) {
	p := models.Pageable{Page: 0, Size: models.DefaultPageSize}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return p, services.BadRequest("Invalid page", services.KeyCriteriaInvalid)
		}
		p.Page = n
	}
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return p, services.BadRequest("Invalid size", services.KeyCriteriaInvalid)
		}
		if n > models.MaxPageSize {
			n = models.MaxPageSize
		}
		p.Size = n
	}
	// page*size must stay a valid offset
	if p.Page > math.MaxInt/p.Size {
		return p, services.BadRequest("Invalid page", services.KeyCriteriaInvalid)
	}

	for _, raw := range c.Context().QueryArgs().PeekMulti("sort") {
		parts := splitList(string(raw))
		if len(parts) == 0 {
			continue
		}
		desc := false
		if last := strings.ToLower(parts[len(parts)-1]); last == "asc" || last == "desc" {
			desc = last == "desc"
			parts = parts[:len(parts)-1]
		}
		for _, field := range parts {
			p.Sort = append(p.Sort, models.SortOrder{Field: field, Desc: desc})
		}
	}
	return p, nil
}

// optionalQuery returns nil when the parameter is absent, so "missing" and
// "empty" stay distinguishable.
func optionalQuery(c *fiber.Ctx, key string) *string {
	args := c.Context().QueryArgs()
	if !args.Has(key) {
		return nil
	}
	v := string(args.Peek(key))
	return &v
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, services.BadRequest("Invalid ID", services.KeyIDInvalid)
	}
	return id, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
