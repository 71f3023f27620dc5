package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shelfwise/internal/api"
	"shelfwise/internal/auth"
	"shelfwise/internal/domain"
	applog "shelfwise/internal/log"
	"shelfwise/internal/repos"
	"shelfwise/internal/services"
	"shelfwise/internal/validate"
)

type OnboardingHandler struct {
	*view
	Profiles *services.ProfileService
}

func homeFor(r domain.Role) string {
	if r == domain.RoleAdmin {
		return "/admin"
	}
	return "/products"
}

// SelectRoleForm sends users who already picked a role to their home page.
func (h *OnboardingHandler) SelectRoleForm(c *fiber.Ctx) error {
	u, err := h.Profiles.Me(c.UserContext(), token(c))
	switch {
	case err == nil && u.HasRole():
		return c.Redirect(homeFor(u.Role))
	case err != nil && !api.IsNotFound(err):
		applog.Error(c, "onboarding.me", err, nil)
	}
	return h.render(c, "select_role", fiber.Map{"Greeting": greeting(auth.FromCtx(c))})
}

func greeting(s auth.Session) string {
	if s.FirstName != "" {
		return s.FirstName
	}
	return "there"
}

func (h *OnboardingHandler) SelectRole(c *fiber.Ctx) error {
	role, ok := validate.Role(c.FormValue("role"))
	if !ok {
		c.Status(fiber.StatusUnprocessableEntity)
		return h.render(c, "select_role", fiber.Map{"Greeting": greeting(auth.FromCtx(c)), "Error": "Please select a role"})
	}
	u, err := h.Profiles.SelectRole(c.UserContext(), token(c), role)
	if err != nil {
		if h.signInFirst(c, err) {
			return nil
		}
		applog.Error(c, "onboarding.role", err, nil)
		c.Status(fiber.StatusBadGateway)
		return h.render(c, "select_role", fiber.Map{
			"Greeting": greeting(auth.FromCtx(c)),
			"Error":    api.Message(err, "Failed to select role"),
			"Selected": string(role),
		})
	}
	applog.Audit(c, "onboarding.role", map[string]any{"role": string(u.Role)})
	return c.Redirect(homeFor(u.Role))
}

var profileSteps = []struct{ Title, Description string }{
	{"Basic Information", "Tell us your name"},
	{"Contact Details", "How can we reach you?"},
	{"Personal Info", "A bit more about you"},
	{"About You", "Share something about yourself"},
}

func (h *OnboardingHandler) ProfileForm(c *fiber.Ctx) error {
	s := auth.FromCtx(c)
	return h.profileStep(c, 0, domain.Profile{FirstName: s.FirstName, LastName: s.LastName}, nil)
}

func (h *OnboardingHandler) profileStep(c *fiber.Ctx, step int, p domain.Profile, errs map[string]string) error {
	step = max(0, min(step, len(profileSteps)-1))
	if len(errs) > 0 {
		c.Status(fiber.StatusUnprocessableEntity)
	}
	return h.render(c, "complete_profile", fiber.Map{
		"Step":    step,
		"Number":  step + 1,
		"Total":   len(profileSteps),
		"Current": profileSteps[step],
		"Last":    step == len(profileSteps)-1,
		"Profile": p,
		"Errors":  errs,
	})
}

// ProfileStep advances, goes back, or finishes the four-step profile form. Fields from
// every step travel as hidden inputs; validation happens on the step that owns them.
func (h *OnboardingHandler) ProfileStep(c *fiber.Ctx) error {
	step, _ := strconv.Atoi(c.FormValue("step"))
	p := domain.Profile{
		FirstName:   validate.Text(c.FormValue("firstName"), 50),
		LastName:    validate.Text(c.FormValue("lastName"), 50),
		PhoneNumber: validate.Text(c.FormValue("phoneNumber"), 20),
		Birthday:    validate.Text(c.FormValue("birthday"), 10),
		Address:     validate.Text(c.FormValue("address"), 300),
		Bio:         validate.Text(c.FormValue("bio"), 500),
	}
	if c.FormValue("action") == "back" {
		return h.profileStep(c, step-1, p, nil)
	}

	errs := map[string]string{}
	switch step {
	case 0:
		if _, ok := validate.Name(p.FirstName); !ok {
			errs["firstName"] = "First name is required"
		}
	case 1:
		if _, ok := validate.Phone(p.PhoneNumber); !ok {
			errs["phoneNumber"] = "Enter a valid phone number"
		}
	case 2:
		if _, ok := validate.Birthday(p.Birthday); !ok {
			errs["birthday"] = "Birthday must be a past date (YYYY-MM-DD)"
		}
	}
	if len(errs) > 0 {
		return h.profileStep(c, step, p, errs)
	}
	if step < len(profileSteps)-1 {
		return h.profileStep(c, step+1, p, nil)
	}
	if p.FirstName == "" {
		return h.profileStep(c, 0, p, map[string]string{"firstName": "First name is required"})
	}

	if _, err := h.Profiles.Create(c.UserContext(), token(c), p); err != nil {
		if h.signInFirst(c, err) {
			return nil
		}
		h.failed(c, "onboarding.profile", err, "Failed to save profile")
		return h.profileStep(c, step, p, nil)
	}
	applog.Audit(c, "onboarding.profile", map[string]any{"skipped": false})
	h.flash(c, repos.FlashSuccess, "Profile completed!")
	return c.Redirect("/products")
}

// Skip creates a minimal profile so onboarding ends. The first name falls back to the
// identity provider's, then to the email's local part, since a blank one would send
// the user straight back here.
func (h *OnboardingHandler) Skip(c *fiber.Ctx) error {
	s := auth.FromCtx(c)
	first := firstNonEmpty(validate.Text(c.FormValue("firstName"), 50), s.FirstName, strings.Split(s.Email, "@")[0], "Shopper")
	last := firstNonEmpty(validate.Text(c.FormValue("lastName"), 50), s.LastName)
	if _, err := h.Profiles.Create(c.UserContext(), token(c), domain.Profile{FirstName: first, LastName: last}); err != nil {
		if h.signInFirst(c, err) {
			return nil
		}
		h.failed(c, "onboarding.skip", err, "Failed to create profile")
		return c.Redirect("/complete-profile")
	}
	applog.Audit(c, "onboarding.profile", map[string]any{"skipped": true})
	h.flash(c, repos.FlashSuccess, "Profile created!")
	return c.Redirect("/products")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
