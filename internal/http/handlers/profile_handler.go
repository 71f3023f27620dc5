package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"shelfwise/internal/auth"
	"shelfwise/internal/domain"
	applog "shelfwise/internal/log"
	"shelfwise/internal/repos"
	"shelfwise/internal/services"
	"shelfwise/internal/validate"
)

type ProfileHandler struct {
	*view
	Profiles *services.ProfileService
	Orders   *services.OrderService
	Wish     *services.WishlistService
}

// View shows the profile with order and wishlist counts; ?edit=1 switches to the form.
func (h *ProfileHandler) View(c *fiber.Ctx) error {
	tok := token(c)
	var (
		profile *domain.Profile
		orders  []domain.Order
		saved   []domain.WishlistItem
	)
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() (err error) {
		profile, err = h.Profiles.Get(ctx, tok)
		return err
	})
	g.Go(func() error {
		var err error
		if orders, err = h.Orders.List(ctx, tok); err != nil {
			applog.Error(c, "profile.orders", err, nil)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if saved, err = h.Wish.List(ctx, tok); err != nil {
			applog.Error(c, "profile.wishlist", err, nil)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if h.signInFirst(c, err) {
			return nil
		}
		h.failed(c, "profile.load", err, "Failed to load profile")
	}
	if profile == nil {
		profile = &domain.Profile{}
	}
	return h.render(c, "profile", fiber.Map{
		"Profile":    profile,
		"Editing":    c.Query("edit") == "1",
		"OrderCount": len(orders),
		"SavedCount": len(saved),
	})
}

func readProfile(c *fiber.Ctx) (domain.Profile, map[string]string) {
	errs := map[string]string{}
	p := domain.Profile{
		LastName:  validate.Text(c.FormValue("lastName"), 50),
		Address:   validate.Text(c.FormValue("address"), 300),
		Bio:       validate.Text(c.FormValue("bio"), 500),
		AvatarURL: validate.Text(c.FormValue("avatarUrl"), 500),
	}
	var ok bool
	if p.FirstName, ok = validate.Name(c.FormValue("firstName")); !ok {
		errs["firstName"] = "First name is required"
	}
	if p.PhoneNumber, ok = validate.Phone(c.FormValue("phoneNumber")); !ok {
		errs["phoneNumber"] = "Enter a valid phone number"
	}
	if p.Birthday, ok = validate.Birthday(c.FormValue("birthday")); !ok {
		errs["birthday"] = "Birthday must be a past date (YYYY-MM-DD)"
	}
	if p.AvatarURL != "" && !strings.HasPrefix(p.AvatarURL, "https://") {
		errs["avatarUrl"] = "Avatar must be an https URL"
	}
	return p, errs
}

func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	p, errs := readProfile(c)
	if len(errs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"form": "profile"})
		c.Status(fiber.StatusUnprocessableEntity)
		return h.render(c, "profile", fiber.Map{"Profile": &p, "Editing": true, "Errors": errs})
	}
	if _, err := h.Profiles.Save(c.UserContext(), token(c), p); err != nil {
		if h.signInFirst(c, err) {
			return nil
		}
		h.failed(c, "profile.save", err, "Failed to update profile")
		return c.Redirect("/profile?edit=1")
	}
	applog.Audit(c, "profile.save", nil)
	h.flash(c, repos.FlashSuccess, "Profile updated successfully")
	return c.Redirect("/profile")
}

var settingsTabs = []string{"account", "notifications", "security", "appearance"}

const notifyCookie = "notify"

var notifyKinds = []string{"orders", "promotions", "newsletter"}

// Settings renders one of the account settings tabs.
func (h *ProfileHandler) Settings(c *fiber.Ctx) error {
	tab := c.Query("tab", "account")
	known := false
	for _, t := range settingsTabs {
		known = known || t == tab
	}
	if !known {
		tab = "account"
	}
	enabled := map[string]bool{}
	raw := c.Cookies(notifyCookie, "orders")
	for _, k := range strings.Split(raw, ",") {
		enabled[k] = true
	}
	return h.render(c, "settings", fiber.Map{
		"Tab":         tab,
		"Tabs":        settingsTabs,
		"Identity":    auth.FromCtx(c),
		"NotifyKinds": notifyKinds,
		"Notify":      enabled,
	})
}

// SaveNotifications keeps notification preferences in this browser only.
func (h *ProfileHandler) SaveNotifications(c *fiber.Ctx) error {
	var on []string
	for _, k := range notifyKinds {
		if c.FormValue(k) == "on" {
			on = append(on, k)
		}
	}
	if len(on) == 0 {
		on = []string{"none"}
	}
	c.Cookie(&fiber.Cookie{
		Name:     notifyCookie,
		Value:    strings.Join(on, ","),
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.Secure,
	})
	h.flash(c, repos.FlashSuccess, "Notification preferences saved")
	return c.Redirect("/settings?tab=notifications")
}
