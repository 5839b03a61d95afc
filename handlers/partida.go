// handlers/partida.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"partidas-service/models"
	"partidas-service/services"
	"partidas-service/utils"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// PartidaHandler is the REST resource for partidas.
type PartidaHandler struct {
	AppName      string
	Service      *services.PartidaService
	QueryService *services.PartidaQueryService
}

func NewPartidaHandler(appName string, svc *services.PartidaService, query *services.PartidaQueryService) *PartidaHandler {
	return &PartidaHandler{AppName: appName, Service: svc, QueryService: query}
}

// CreatePartida handles POST /api/partidas.
func (h *PartidaHandler) CreatePartida(c *fiber.Ctx) error {
	in, err := decodePayload(c)
	if err != nil {
		return err
	}
	log.Debugf("REST request to save Partida : %+v", in)

	p, err := h.Service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}

	id := strconv.FormatInt(p.ID, 10)
	c.Location("/api/partidas/" + id)
	h.setAlert(c, "created", id)
	return c.Status(fiber.StatusCreated).JSON(p)
}

// UpdatePartida handles PUT /api/partidas/:id.
func (h *PartidaHandler) UpdatePartida(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	in, err := decodePayload(c)
	if err != nil {
		return err
	}
	log.Debugf("REST request to update Partida : %d, %+v", id, in)

	p, err := h.Service.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}

	h.setAlert(c, "updated", strconv.FormatInt(p.ID, 10))
	return c.JSON(p)
}

// PartialUpdatePartida handles PATCH /api/partidas/:id with merge-patch semantics.
func (h *PartidaHandler) PartialUpdatePartida(c *fiber.Ctx) error {
	if !isJSONContentType(c.Get(fiber.HeaderContentType)) {
		return fiber.NewError(fiber.StatusUnsupportedMediaType, "Content-Type must be application/json or application/merge-patch+json")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	in, err := decodePayload(c)
	if err != nil {
		return err
	}
	log.Debugf("REST request to partial update Partida partially : %d, %+v", id, in)

	p, err := h.Service.PartialUpdate(c.UserContext(), id, in)
	if err != nil {
		return err
	}

	h.setAlert(c, "updated", strconv.FormatInt(p.ID, 10))
	return c.JSON(p)
}

// GetAllPartidas handles GET /api/partidas.
func (h *PartidaHandler) GetAllPartidas(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return err
	}
	pageable, err := parsePageable(c)
	if err != nil {
		return err
	}
	log.Debugf("REST request to get Partidas by criteria: %+v", criteria)

	page, err := h.QueryService.FindByCriteria(c.UserContext(), criteria, pageable)
	if err != nil {
		return err
	}

	query, _ := url.ParseQuery(string(c.Context().QueryArgs().QueryString()))
	c.Set(utils.TotalCountHeader, strconv.FormatInt(page.TotalElements, 10))
	c.Set(fiber.HeaderLink, utils.PaginationLinks(c.Path(), query, page.Number, page.Size, page.TotalPages()))

	content := page.Content
	if content == nil {
		content = []models.Partida{}
	}
	return c.JSON(content)
}

// CountPartidas handles GET /api/partidas/count.
func (h *PartidaHandler) CountPartidas(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return err
	}
	log.Debugf("REST request to count Partidas by criteria: %+v", criteria)

	n, err := h.QueryService.CountByCriteria(c.UserContext(), criteria)
	if err != nil {
		return err
	}
	return c.JSON(n)
}

// GetPartida handles GET /api/partidas/:id.
func (h *PartidaHandler) GetPartida(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	log.Debugf("REST request to get Partida : %d", id)

	p, err := h.Service.FindOne(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// DeletePartida handles DELETE /api/partidas/:id.
func (h *PartidaHandler) DeletePartida(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	log.Debugf("REST request to delete Partida : %d", id)

	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}

	h.setAlert(c, "deleted", strconv.FormatInt(id, 10))
	return c.SendStatus(fiber.StatusNoContent)
}

// GanadoresDeJuego handles GET /ganadoresDeJuego?nombre=.
func (h *PartidaHandler) GanadoresDeJuego(c *fiber.Ctx) error {
	nombre := optionalQuery(c, "nombre")
	partidas, err := h.QueryService.FindByJuegoNombreOrderByGanadorAsc(c.UserContext(), nombre)
	if err != nil {
		return err
	}
	return c.JSON(partidas)
}

// PartidasGanadas handles GET /partidasGanadas?apodo=.
func (h *PartidaHandler) PartidasGanadas(c *fiber.Ctx) error {
	apodo := optionalQuery(c, "apodo")
	partidas, err := h.QueryService.FindByJugadorApodoOrderByGanadorAsc(c.UserContext(), apodo)
	if err != nil {
		return err
	}
	return c.JSON(partidas)
}

func (h *PartidaHandler) setAlert(c *fiber.Ctx, action, param string) {
	c.Set(alertHeader(h.AppName, "alert"), fmt.Sprintf("%s.%s.%s", h.AppName, services.EntityName, action))
	c.Set(alertHeader(h.AppName, "params"), param)
}

func alertHeader(appName, suffix string) string {
	return "X-" + appName + "-" + suffix
}

// decodePayload reads the body directly; c.BodyParser refuses
// application/merge-patch+json.
func decodePayload(c *fiber.Ctx) (models.PartidaPayload, error) {
	var in models.PartidaPayload
	if len(c.Body()) == 0 {
		return in, fiber.NewError(fiber.StatusBadRequest, "request body is required")
	}
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return in, fiber.NewError(fiber.StatusBadRequest, "invalid JSON: "+err.Error())
	}
	return in, nil
}

func isJSONContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
	return ct == fiber.MIMEApplicationJSON || ct == "application/merge-patch+json"
}
