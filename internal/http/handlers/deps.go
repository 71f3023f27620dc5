package handlers

import (
	"github.com/jmoiron/sqlx"

	"shelfwise/internal/api"
	"shelfwise/internal/config"
	"shelfwise/internal/live"
	"shelfwise/internal/repos"
	"shelfwise/internal/services"
)

type Deps struct {
	Cfg *config.Config

	HomeHandler       *HomeHandler
	ProductHandler    *ProductHandler
	CategoryHandler   *CategoryHandler
	CartHandler       *CartHandler
	OrderHandler      *OrderHandler
	WishlistHandler   *WishlistHandler
	ProfileHandler    *ProfileHandler
	OnboardingHandler *OnboardingHandler
	AdminHandler      *AdminHandler
	InviteHandler     *InviteHandler
	AuthHandler       *AuthHandler
}

func NewDeps(db *sqlx.DB, client *api.Client, cfg *config.Config) *Deps {
	v := &view{Flash: repos.NewFlashRepo(db), Secure: cfg.CookieSecure}

	catalogSvc := services.NewCatalogService(client)
	cartSvc := services.NewCartService(client)
	orderSvc := services.NewOrderService(client)
	adminSvc := services.NewAdminService(client)
	wishSvc := services.NewWishlistService(client)
	profileSvc := services.NewProfileService(client)
	inviteSvc := services.NewInvitationService(db)

	return &Deps{
		Cfg:               cfg,
		HomeHandler:       &HomeHandler{view: v, Catalog: catalogSvc},
		ProductHandler:    &ProductHandler{view: v, Catalog: catalogSvc, Tracker: live.NewTracker(), Debounce: cfg.SearchDebounce},
		CategoryHandler:   &CategoryHandler{view: v, Catalog: catalogSvc},
		CartHandler:       &CartHandler{view: v, Cart: cartSvc},
		OrderHandler:      &OrderHandler{view: v, Cart: cartSvc, Orders: orderSvc},
		WishlistHandler:   &WishlistHandler{view: v, Wish: wishSvc},
		ProfileHandler:    &ProfileHandler{view: v, Profiles: profileSvc, Orders: orderSvc, Wish: wishSvc},
		OnboardingHandler: &OnboardingHandler{view: v, Profiles: profileSvc},
		AdminHandler:      &AdminHandler{view: v, Admin: adminSvc},
		InviteHandler:     &InviteHandler{view: v, Invites: inviteSvc},
		AuthHandler:       &AuthHandler{view: v, SignInURL: cfg.Identity.SignInURL, SessionCookie: cfg.Identity.SessionCookie},
	}
}
