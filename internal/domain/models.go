package domain

type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CreatedAt    string `json:"createdAt,omitempty"`
	ProductCount int    `json:"productCount,omitempty"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	SKU         string    `json:"sku"`
	CategoryID  int64     `json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   string    `json:"createdAt,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Reviews     []Review  `json:"reviews,omitempty"`
}

// OutOfStock depends on quantity alone.
func (p Product) OutOfStock() bool { return p.Quantity == 0 }

func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// NewProduct is the payload for creating or updating a product.
type NewProduct struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	CategoryID  int64   `json:"categoryId"`
	Quantity    int     `json:"quantity"`
	SKU         string  `json:"sku"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type Cart struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Items     []CartItem `json:"items"`
	CreatedAt string     `json:"createdAt,omitempty"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
}

type CartItem struct {
	ID        int64   `json:"id"`
	CartID    int64   `json:"cartId"`
	ProductID string  `json:"productId"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

type Order struct {
	ID         string      `json:"id"`
	UserID     int64       `json:"userId"`
	Address    string      `json:"address"`
	Status     OrderStatus `json:"status"`
	TotalPrice float64     `json:"totalPrice"`
	CreatedAt  string      `json:"createdAt,omitempty"`
	UpdatedAt  string      `json:"updatedAt,omitempty"`
	Items      []OrderItem `json:"items"`
}

func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

type OrderItem struct {
	ID        int64   `json:"id"`
	OrderID   string  `json:"orderId"`
	ProductID string  `json:"productId"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderLine is one requested line when placing an order.
type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type NewOrder struct {
	Address string      `json:"address"`
	Items   []OrderLine `json:"items"`
}

type WishlistItem struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	ProductID string  `json:"productId"`
	Product   Product `json:"product"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

type Review struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	User      *User  `json:"user,omitempty"`
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// Page is the canonical paginated list shape returned by the API client.
type Page[T any] struct {
	Items      []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

func (p Page[T]) HasPrev() bool { return p.Page > 1 }

func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }

// DashboardStats is the admin overview returned by the backend.
type DashboardStats struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalOrders    int     `json:"totalOrders"`
	TotalProducts  int     `json:"totalProducts"`
	TotalCustomers int     `json:"totalCustomers"`
}
