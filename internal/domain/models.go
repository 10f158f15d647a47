package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
)

type MenuItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsSuperuser  bool      `json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserProfile struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
}

type Order struct {
	ID          int         `json:"id"`
	UserID      int         `json:"user_id"`
	TotalAmount float64     `json:"total_amount"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `json:"items"`
}

type OrderItem struct {
	MenuItemID   int     `json:"menu_item_id"`
	MenuItemName string  `json:"menu_item_name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

type Payment struct {
	ID          int       `json:"id"`
	OrderID     int       `json:"order_id"`
	UserID      int       `json:"user_id"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	PaymentDate time.Time `json:"payment_date"`
}

// DashboardSummary is the admin view over orders, payments and the menu.
type DashboardSummary struct {
	TotalOrders     int     `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	PendingPayments int     `json:"pending_payments"`
	MenuItems       int     `json:"menu_items"`
	RecentOrders    []Order `json:"recent_orders"`
}

// OrderEvent is published to Kafka on order placement and payment completion.
type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id"`
	UserID    int       `json:"user_id"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventOrderPlaced      = "order_placed"
	EventPaymentCompleted = "payment_completed"
)
