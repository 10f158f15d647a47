package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"

	"kitchary/internal/domain"
	"kitchary/internal/service"
)

const sessionCookie = "session_token"

type Handler struct {
	Auth      service.AuthServiceInterface
	Menu      service.MenuServiceInterface
	Orders    service.OrderServiceInterface
	Dashboard service.DashboardServiceInterface
	MediaDir  string
}

func NewHandler(auth service.AuthServiceInterface, menu service.MenuServiceInterface, orders service.OrderServiceInterface, dashboard service.DashboardServiceInterface, mediaDir string) *Handler {
	return &Handler{
		Auth:      auth,
		Menu:      menu,
		Orders:    orders,
		Dashboard: dashboard,
		MediaDir:  mediaDir,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/menu/", h.getMenu).Methods("GET")
	r.HandleFunc("/menu/", h.requireAdmin(h.createMenuItem)).Methods("POST")
	r.HandleFunc("/menu/{id}/image", h.requireAdmin(h.uploadMenuItemImage)).Methods("POST")

	r.HandleFunc("/signup/", h.signup).Methods("POST")
	r.HandleFunc("/login/", h.login).Methods("POST")
	r.HandleFunc("/logout/", h.logout).Methods("POST", "GET")

	r.HandleFunc("/", h.requireAuth(h.dashboardRedirect)).Methods("GET")
	r.HandleFunc("/dashboard/admin/", h.requireAdmin(h.adminDashboard)).Methods("GET")
	r.HandleFunc("/dashboard/customer/", h.requireAuth(h.customerDashboard)).Methods("GET")

	r.HandleFunc("/orders/", h.requireAuth(h.listOrders)).Methods("GET")
	r.HandleFunc("/orders/place/", h.requireAuth(h.getOrderForm)).Methods("GET")
	r.HandleFunc("/orders/place/", h.requireAuth(h.placeOrder)).Methods("POST")
	r.HandleFunc("/orders/{id}/confirmation/", h.requireAuth(h.orderConfirmation)).Methods("GET")

	r.HandleFunc("/payment/{orderId}/", h.requireAuth(h.getPayment)).Methods("GET")
	r.HandleFunc("/payment/{orderId}/", h.requireAuth(h.completePayment)).Methods("POST")
	r.HandleFunc("/payment/success/{paymentId}/", h.requireAuth(h.paymentSuccess)).Methods("GET")
	r.HandleFunc("/payment/success/{paymentId}/qrcode", h.requireAuth(h.paymentQRCode)).Methods("GET")
	r.HandleFunc("/payments/", h.requireAuth(h.listPayments)).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "kitchary",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// ---- auth ----

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "username, email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.Auth.Signup(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken),
			errors.Is(err, service.ErrEmailTaken),
			errors.Is(err, service.ErrInvalidRole):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    result.Token,
		Path:     "/",
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{
		"username": result.User.Username,
		"redirect": result.Redirect,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err := h.Auth.Logout(r.Context(), cookie.Value); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	writeJSON(w, http.StatusOK, map[string]string{"redirect": "/login/"})
}

func (h *Handler) dashboardRedirect(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)
	redirect, err := h.Auth.LandingFor(user.ID, user.IsSuperuser)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"redirect": redirect})
}

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Dashboard.Summary()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) customerDashboard(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)
	writeJSON(w, http.StatusOK, map[string]string{
		"username": user.Username,
		"role":     domain.RoleCustomer,
	})
}

// ---- menu ----

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.ListItems()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Menu.CreateItem(&item); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidItemName), errors.Is(err, service.ErrInvalidItemPrice):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid menu item id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		http.Error(w, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed", http.StatusBadRequest)
		return
	}

	uploadDir := filepath.Join(h.MediaDir, "menu_images")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		http.Error(w, "Failed to create upload directory", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("item_%d_%s", itemID, filepath.Base(header.Filename))
	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		http.Error(w, "Failed to create file", http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	imageURL := "/media/menu_images/" + filename
	if err := h.Menu.SetItemImage(itemID, imageURL); err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}

// ---- orders ----

func (h *Handler) getOrderForm(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.ListItems()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"menu_items": items})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantities map[string]int `json:"quantities"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	quantities := make(map[int]int, len(req.Quantities))
	for key, qty := range req.Quantities {
		itemID, err := strconv.Atoi(key)
		if err != nil {
			http.Error(w, "Invalid menu item id: "+key, http.StatusBadRequest)
			return
		}
		quantities[itemID] = qty
	}

	user := userFrom(r)
	order, err := h.Orders.PlaceOrder(r.Context(), user.ID, quantities)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoItemsSelected), errors.Is(err, service.ErrInvalidQuantity):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"order":    order,
		"redirect": fmt.Sprintf("/payment/%d/", order.ID),
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOrders(userFrom(r).ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) orderConfirmation(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.GetOrder(userFrom(r).ID, orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// ---- payments ----

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])
	user := userFrom(r)

	order, payment, err := h.Orders.PaymentForOrder(user.ID, orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	history, err := h.Orders.ListPayments(user.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"order":           order,
		"payment":         payment,
		"payment_history": history,
	})
}

func (h *Handler) completePayment(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])
	payment, err := h.Orders.CompletePayment(r.Context(), userFrom(r).ID, orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"payment":  payment,
		"redirect": fmt.Sprintf("/payment/success/%d/", payment.ID),
	})
}

func (h *Handler) paymentSuccess(w http.ResponseWriter, r *http.Request) {
	paymentID, _ := strconv.Atoi(mux.Vars(r)["paymentId"])
	payment, err := h.Orders.GetPayment(userFrom(r).ID, paymentID)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *Handler) paymentQRCode(w http.ResponseWriter, r *http.Request) {
	paymentID, _ := strconv.Atoi(mux.Vars(r)["paymentId"])
	payment, err := h.Orders.GetPayment(userFrom(r).ID, paymentID)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	png, err := qrcode.Encode(fmt.Sprintf("/payment/success/%d/", payment.ID), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Orders.ListPayments(userFrom(r).ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
