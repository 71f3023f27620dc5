package services

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"shelfwise/internal/api"
	"shelfwise/internal/domain"
)

type AdminService struct {
	API *api.Client
}

func NewAdminService(c *api.Client) *AdminService { return &AdminService{API: c} }

type TopProduct struct {
	Name    string
	Sales   int
	Revenue float64
}

type Dashboard struct {
	Stats       domain.DashboardStats
	Orders      []domain.Order
	Products    []domain.Product
	Categories  []domain.Category
	Customers   []domain.User
	TopProducts []TopProduct
}

// RecentOrders is the overview slice of Orders.
func (d Dashboard) RecentOrders() []domain.Order {
	if len(d.Orders) > 5 {
		return d.Orders[:5]
	}
	return d.Orders
}

// Dashboard loads every admin panel concurrently; any failure fails the page.
func (s *AdminService) Dashboard(ctx context.Context, token string) (Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Stats, err = s.API.Orders.AdminStats(ctx, token)
		return err
	})
	g.Go(func() (err error) {
		d.Orders, err = s.API.Orders.AdminList(ctx, token)
		return err
	})
	g.Go(func() error {
		page, err := s.API.Products.List(ctx, api.ProductQuery{Page: 1, Limit: 50})
		d.Products = page.Items
		return err
	})
	g.Go(func() (err error) {
		d.Categories, err = s.API.Categories.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Customers, err = s.API.Users.List(ctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	d.TopProducts = topProducts(d.Orders, 4)
	return d, nil
}

// topProducts ranks products by units sold across the listed orders.
func topProducts(orders []domain.Order, n int) []TopProduct {
	byID := map[string]*TopProduct{}
	var order []string
	for _, o := range orders {
		if o.Status == domain.StatusCancelled {
			continue
		}
		for _, it := range o.Items {
			tp, ok := byID[it.ProductID]
			if !ok {
				name := it.Product.Name
				if name == "" {
					name = it.ProductID
				}
				tp = &TopProduct{Name: name}
				byID[it.ProductID] = tp
				order = append(order, it.ProductID)
			}
			tp.Sales += it.Quantity
			tp.Revenue += it.Price * float64(it.Quantity)
		}
	}
	out := make([]TopProduct, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sales > out[j].Sales })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func (s *AdminService) CreateProduct(ctx context.Context, token string, in domain.NewProduct) (domain.Product, error) {
	return s.API.Products.Create(ctx, token, in)
}

func (s *AdminService) DeleteProduct(ctx context.Context, token, id string) error {
	return s.API.Products.Delete(ctx, token, id)
}

func (s *AdminService) CreateCategory(ctx context.Context, token, name string) error {
	_, err := s.API.Categories.Create(ctx, token, name)
	return err
}

func (s *AdminService) DeleteCategory(ctx context.Context, token string, id int64) error {
	return s.API.Categories.Delete(ctx, token, id)
}

func (s *AdminService) UpdateOrderStatus(ctx context.Context, token, id string, st domain.OrderStatus) error {
	return s.API.Orders.UpdateStatus(ctx, token, id, st)
}

func (s *AdminService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.API.Categories.List(ctx)
}
