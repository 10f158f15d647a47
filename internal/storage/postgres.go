package storage

import (
	"database/sql"
	"fmt"

	"kitchary/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// ---- users & profiles ----

func (r *PostgresRepository) InsertUser(user *domain.User) error {
	return r.DB.QueryRow(`
		INSERT INTO users (username, email, password_hash, is_superuser)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, user.Username, user.Email, user.PasswordHash, user.IsSuperuser).
		Scan(&user.ID, &user.CreatedAt)
}

func (r *PostgresRepository) GetUserByUsername(username string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(`
		SELECT id, username, email, password_hash, is_superuser, created_at
		FROM users WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsSuperuser, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetUserByID(id int) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(`
		SELECT id, username, email, password_hash, is_superuser, created_at
		FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsSuperuser, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) UsernameExists(username string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) GetProfile(userID int) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.DB.QueryRow(`
		SELECT id, user_id, role FROM user_profiles WHERE user_id = $1
	`, userID).Scan(&profile.ID, &profile.UserID, &profile.Role)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresRepository) UpsertProfile(userID int, role string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.DB.QueryRow(`
		INSERT INTO user_profiles (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role
		RETURNING id, user_id, role
	`, userID, role).Scan(&profile.ID, &profile.UserID, &profile.Role)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ---- menu ----

func (r *PostgresRepository) ListMenuItems() ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, description, price, image_url, created_at
		FROM menu_items
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.ImageURL, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, name, description, price, image_url, created_at
		FROM menu_items WHERE id = $1
	`, id).Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.ImageURL, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) InsertMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (name, description, price, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, item.Name, item.Description, item.Price, item.ImageURL).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) UpdateMenuItemImage(id int, imageURL string) (bool, error) {
	result, err := r.DB.Exec("UPDATE menu_items SET image_url = $1 WHERE id = $2", imageURL, id)
	if err != nil {
		return false, err
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// ---- orders ----

// CreateOrder writes the order, its items and the pending payment in one
// transaction so a mid-sequence failure never leaves an order behind without
// its payment.
func (r *PostgresRepository) CreateOrder(userID int, total float64, items []domain.OrderItem) (*domain.Order, *domain.Payment, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	order := &domain.Order{UserID: userID, TotalAmount: total, Items: items}
	err = tx.QueryRow(`
		INSERT INTO orders (user_id, total_amount)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, userID, total).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, menu_item_id, quantity)
			VALUES ($1, $2, $3)
		`, order.ID, item.MenuItemID, item.Quantity); err != nil {
			return nil, nil, fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	payment := &domain.Payment{
		OrderID: order.ID,
		UserID:  userID,
		Amount:  total,
		Status:  domain.PaymentPending,
	}
	err = tx.QueryRow(`
		INSERT INTO payments (order_id, user_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, payment_date
	`, payment.OrderID, payment.UserID, payment.Amount, payment.Status).
		Scan(&payment.ID, &payment.PaymentDate)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit order: %w", err)
	}
	return order, payment, nil
}

func (r *PostgresRepository) ListUserOrders(userID int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, total_amount, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.TotalAmount, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// GetUserOrder filters on the owning user so another user's order id behaves
// exactly like a missing one.
func (r *PostgresRepository) GetUserOrder(userID, orderID int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, user_id, total_amount, created_at
		FROM orders WHERE id = $1 AND user_id = $2
	`, orderID, userID).Scan(&order.ID, &order.UserID, &order.TotalAmount, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT oi.menu_item_id, m.name, oi.quantity, m.price
		FROM order_items oi
		JOIN menu_items m ON oi.menu_item_id = m.id
		WHERE oi.order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.MenuItemID, &item.MenuItemName, &item.Quantity, &item.Price); err != nil {
			continue
		}
		order.Items = append(order.Items, item)
	}
	return &order, nil
}

// ---- payments ----

func (r *PostgresRepository) GetPaymentByOrder(orderID, userID int) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.DB.QueryRow(`
		SELECT id, order_id, user_id, amount, status, payment_date
		FROM payments WHERE order_id = $1 AND user_id = $2
	`, orderID, userID).Scan(&payment.ID, &payment.OrderID, &payment.UserID, &payment.Amount, &payment.Status, &payment.PaymentDate)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PostgresRepository) MarkPaymentCompleted(paymentID int, amount float64) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.DB.QueryRow(`
		UPDATE payments
		SET amount = $1, status = $2, payment_date = NOW()
		WHERE id = $3
		RETURNING id, order_id, user_id, amount, status, payment_date
	`, amount, domain.PaymentCompleted, paymentID).
		Scan(&payment.ID, &payment.OrderID, &payment.UserID, &payment.Amount, &payment.Status, &payment.PaymentDate)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PostgresRepository) InsertCompletedPayment(orderID, userID int, amount float64) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.DB.QueryRow(`
		INSERT INTO payments (order_id, user_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, user_id, amount, status, payment_date
	`, orderID, userID, amount, domain.PaymentCompleted).
		Scan(&payment.ID, &payment.OrderID, &payment.UserID, &payment.Amount, &payment.Status, &payment.PaymentDate)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PostgresRepository) GetUserPayment(userID, paymentID int) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.DB.QueryRow(`
		SELECT id, order_id, user_id, amount, status, payment_date
		FROM payments WHERE id = $1 AND user_id = $2
	`, paymentID, userID).Scan(&payment.ID, &payment.OrderID, &payment.UserID, &payment.Amount, &payment.Status, &payment.PaymentDate)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PostgresRepository) ListUserPayments(userID int) ([]domain.Payment, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, user_id, amount, status, payment_date
		FROM payments
		WHERE user_id = $1
		ORDER BY payment_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(&payment.ID, &payment.OrderID, &payment.UserID, &payment.Amount, &payment.Status, &payment.PaymentDate); err != nil {
			continue
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

// ---- dashboard ----

func (r *PostgresRepository) CountOrders() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}

func (r *PostgresRepository) CompletedRevenue() (float64, error) {
	var revenue float64
	err := r.DB.QueryRow(`
		SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1
	`, domain.PaymentCompleted).Scan(&revenue)
	return revenue, err
}

func (r *PostgresRepository) CountPendingPayments() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM payments WHERE status = $1", domain.PaymentPending).Scan(&count)
	return count, err
}

func (r *PostgresRepository) CountMenuItems() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func (r *PostgresRepository) RecentOrders(limit int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, total_amount, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.TotalAmount, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}
