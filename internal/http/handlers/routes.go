package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	applog "shelfwise/internal/log"
)

// Mount registers every page route on app.
func Mount(app *fiber.App, d *Deps) {
	v := d.HomeHandler.view
	signedIn := v.RequireSignedIn()

	// Public pages
	app.Get("/", d.HomeHandler.Home)
	app.Get("/coming-soon", d.HomeHandler.ComingSoon)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Post("/theme", d.HomeHandler.Theme)

	app.Get("/products", d.ProductHandler.List)
	app.Get("/products/live", limiter.New(limiter.Config{
		Max:        60,
		Expiration: 30 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|live"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.search.hit", nil)
			return c.SendStatus(fiber.StatusTooManyRequests)
		},
	}), d.ProductHandler.Live)
	app.Get("/products/:id", d.ProductHandler.Detail)
	app.Post("/products/:id/reviews", signedIn, d.ProductHandler.Review)
	app.Get("/categories", d.CategoryHandler.List)

	app.Get("/create/:type", d.InviteHandler.Form)
	app.Post("/create/:type", d.InviteHandler.Preview)
	app.Get("/create/:type/:id/download", d.InviteHandler.Download)

	// Identity
	app.Get("/sign-in", d.AuthHandler.SignIn)
	app.Get("/sign-out", d.AuthHandler.SignOut)
	app.Post("/sign-out", d.AuthHandler.SignOut)

	// Onboarding
	app.Get("/select-role", signedIn, d.OnboardingHandler.SelectRoleForm)
	app.Post("/select-role", signedIn, d.OnboardingHandler.SelectRole)
	app.Get("/complete-profile", signedIn, d.OnboardingHandler.ProfileForm)
	app.Post("/complete-profile", signedIn, d.OnboardingHandler.ProfileStep)
	app.Post("/complete-profile/skip", signedIn, d.OnboardingHandler.Skip)

	// Cart & orders
	app.Get("/cart", signedIn, d.CartHandler.View)
	app.Post("/cart/items", signedIn, d.CartHandler.Add)
	app.Post("/cart/items/:id", signedIn, d.CartHandler.Update)
	app.Post("/cart/items/:id/delete", signedIn, d.CartHandler.Remove)
	app.Post("/cart/clear", signedIn, d.CartHandler.Clear)

	app.Get("/checkout", signedIn, d.OrderHandler.Checkout)
	app.Post("/checkout", signedIn, d.OrderHandler.Step)
	app.Post("/orders", signedIn, d.OrderHandler.Place)
	app.Get("/orders", signedIn, d.OrderHandler.History)
	app.Get("/orders/:id", signedIn, d.OrderHandler.View)

	// Wishlist
	app.Get("/wishlist", signedIn, d.WishlistHandler.List)
	app.Post("/wishlist", signedIn, d.WishlistHandler.Save)
	app.Post("/wishlist/clear", signedIn, d.WishlistHandler.Clear)
	app.Post("/wishlist/:productId/delete", signedIn, d.WishlistHandler.Unsave)
	app.Post("/wishlist/:productId/move", signedIn, d.WishlistHandler.MoveToCart)

	// Account
	app.Get("/profile", signedIn, d.ProfileHandler.View)
	app.Post("/profile", signedIn, d.ProfileHandler.Save)
	app.Get("/settings", signedIn, d.ProfileHandler.Settings)
	app.Post("/settings/notifications", signedIn, d.ProfileHandler.SaveNotifications)

	// Admin
	admin := app.Group("/admin", signedIn, v.RequireAdmin(d.ProfileHandler.Profiles))
	admin.Get("/", d.AdminHandler.Dashboard)
	admin.Post("/orders/:id/status", d.AdminHandler.UpdateOrderStatus)
	admin.Post("/categories", d.AdminHandler.CreateCategory)
	admin.Post("/categories/:id/delete", d.AdminHandler.DeleteCategory)
	admin.Get("/products/new", d.AdminHandler.NewProductForm)
	admin.Post("/products", d.AdminHandler.CreateProduct)
	admin.Post("/products/:id/delete", d.AdminHandler.DeleteProduct)
}
