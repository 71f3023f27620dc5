package handlers

import (
	"database/sql"
	"errors"
	"html/template"
	"net/url"

	"github.com/gofiber/fiber/v2"

	applog "shelfwise/internal/log"
	"shelfwise/internal/services"
	"shelfwise/internal/validate"
)

// InviteHandler is the announcement and event invitation generator.
type InviteHandler struct {
	*view
	Invites *services.InvitationService
}

func (h *InviteHandler) kind(c *fiber.Ctx) (services.Card, bool) {
	card, err := services.Defaults(c.Params("type"))
	return card, err == nil
}

func (h *InviteHandler) Form(c *fiber.Ctx) error {
	card, ok := h.kind(c)
	if !ok {
		c.Status(fiber.StatusNotFound)
		return h.render(c, "notfound", fiber.Map{"Message": "Unknown invitation type"})
	}
	return h.page(c, card, "")
}

func (h *InviteHandler) page(c *fiber.Ctx, card services.Card, savedID string) error {
	svg, err := services.Render(card)
	if err != nil {
		return err
	}
	_, ids, err := h.Invites.Recent(h.ensureSID(c))
	if err != nil {
		applog.Error(c, "invite.recent", err, nil)
	}
	return h.render(c, "create", fiber.Map{
		"Card":    card,
		"Preview": template.URL("data:image/svg+xml;charset=utf-8," + url.PathEscape(string(svg))),
		"SavedID": savedID,
		"Recent":  ids,
	})
}

// Preview saves the edited card and shows it with a download link.
func (h *InviteHandler) Preview(c *fiber.Ctx) error {
	if _, ok := h.kind(c); !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	card, err := services.Merge(services.Card{
		Kind:      c.Params("type"),
		Title:     validate.Text(c.FormValue("title"), 60),
		Tagline:   validate.Text(c.FormValue("tagline"), 80),
		Subfamily: validate.Text(c.FormValue("subfamily"), 60),
		Date:      validate.Text(c.FormValue("date"), 30),
		Time:      validate.Text(c.FormValue("time"), 30),
		Location:  validate.Text(c.FormValue("location"), 80),
		Host:      validate.Text(c.FormValue("host"), 60),
		Agenda:    validate.Text(c.FormValue("agenda"), 600),
	})
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	id, err := h.Invites.Save(h.ensureSID(c), card)
	if err != nil {
		h.failed(c, "invite.save", err, "Failed to save invitation")
		return h.page(c, card, "")
	}
	applog.Info(c, "invite.save", map[string]any{"kind": card.Kind, "id": id})
	return h.page(c, card, id)
}

// Download serves a saved card as an SVG attachment named after its title.
func (h *InviteHandler) Download(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	card, err := h.Invites.Get(h.ensureSID(c), id)
	if errors.Is(err, sql.ErrNoRows) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	svg, err := services.Render(card)
	if err != nil {
		return err
	}
	c.Attachment(card.FileName())
	c.Type("svg")
	return c.Send(svg)
}
