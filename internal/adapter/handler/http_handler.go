// Package handler exposes the stores over HTTP. This is the presentation
// boundary: pages and components consume these endpoints and dispatch store
// operations through them.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/savoria/storefront/internal/core/admin"
	"github.com/savoria/storefront/internal/core/auth"
	"github.com/savoria/storefront/internal/core/cart"
	"github.com/savoria/storefront/internal/core/catalog"
	"github.com/savoria/storefront/internal/core/checkout"
	"github.com/savoria/storefront/internal/core/domain"
	"github.com/savoria/storefront/internal/core/orders"
)

// HTTPHandler wires every store behind one router. Like the browser client
// it replaces, the server holds a single cart/auth/checkout session.
type HTTPHandler struct {
	catalog *catalog.Catalog
	cart    *cart.Store
	auth    *auth.Store
	admin   *admin.Store
	flow    *checkout.Flow
	history *orders.History
}

func NewHTTPHandler(cat *catalog.Catalog, cartStore *cart.Store, authStore *auth.Store, adminStore *admin.Store, flow *checkout.Flow, history *orders.History) *HTTPHandler {
	return &HTTPHandler{
		catalog: cat,
		cart:    cartStore,
		auth:    authStore,
		admin:   adminStore,
		flow:    flow,
		history: history,
	}
}

// Router builds the full route table.
func (h *HTTPHandler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/menu", h.ListMenu).Methods(http.MethodGet)
	api.HandleFunc("/menu/categories", h.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/menu/items/{id}", h.GetMenuItem).Methods(http.MethodGet)

	api.HandleFunc("/cart", h.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart", h.ClearCart).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items", h.AddCartItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{id}", h.UpdateCartItem).Methods(http.MethodPatch)
	api.HandleFunc("/cart/items/{id}", h.RemoveCartItem).Methods(http.MethodDelete)

	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", h.CurrentUser).Methods(http.MethodGet)
	api.HandleFunc("/auth/profile", h.UpdateProfile).Methods(http.MethodPatch)
	api.HandleFunc("/auth/addresses", h.AddAddress).Methods(http.MethodPost)
	api.HandleFunc("/auth/addresses/{id}", h.UpdateAddress).Methods(http.MethodPut)
	api.HandleFunc("/auth/addresses/{id}", h.RemoveAddress).Methods(http.MethodDelete)
	api.HandleFunc("/auth/favorites/{itemId}", h.AddFavorite).Methods(http.MethodPost)
	api.HandleFunc("/auth/favorites/{itemId}", h.RemoveFavorite).Methods(http.MethodDelete)

	api.HandleFunc("/checkout/begin", h.BeginCheckout).Methods(http.MethodPost)
	api.HandleFunc("/checkout/delivery", h.SubmitDelivery).Methods(http.MethodPost)
	api.HandleFunc("/checkout/payment", h.SubmitPayment).Methods(http.MethodPost)
	api.HandleFunc("/checkout/back", h.CheckoutBack).Methods(http.MethodPost)
	api.HandleFunc("/checkout/quote", h.CheckoutQuote).Methods(http.MethodGet)
	api.HandleFunc("/checkout/place-order", h.PlaceOrder).Methods(http.MethodPost)

	api.HandleFunc("/orders", h.ListOrders).Methods(http.MethodGet)

	api.HandleFunc("/admin/login", h.AdminLogin).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", h.AdminLogout).Methods(http.MethodPost)
	api.HandleFunc("/admin/stats", h.AdminStats).Methods(http.MethodGet)

	return r
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- menu ---

func (h *HTTPHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	items := h.catalog.Items()
	switch {
	case q.Get("search") != "":
		items = h.catalog.Search(q.Get("search"))
	case q.Get("category") != "":
		items = h.catalog.ItemsByCategory(q.Get("category"))
	case q.Get("dietary") != "":
		var tags []domain.DietaryTag
		for _, t := range strings.Split(q.Get("dietary"), ",") {
			tags = append(tags, domain.DietaryTag(t))
		}
		items = h.catalog.FilterByDietary(tags)
	case q.Get("available") == "true":
		items = h.catalog.AvailableItems()
	}

	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *HTTPHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.catalog.ItemByID(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// --- cart ---

type cartResponse struct {
	Items     []domain.CartLine `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"itemCount"`
}

func (h *HTTPHandler) cartState() cartResponse {
	return cartResponse{
		Items:     h.cart.Lines(),
		Total:     h.cart.Total(),
		ItemCount: h.cart.ItemCount(),
	}
}

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartState())
}

type addCartItemRequest struct {
	MenuItemID     string   `json:"menuItemId"`
	Quantity       int      `json:"quantity"`
	Customizations []string `json:"customizations"`
}

func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity < 1 {
		writeError(w, http.StatusBadRequest, "quantity must be >= 1")
		return
	}

	item, ok := h.catalog.ItemByID(req.MenuItemID)
	if !ok {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}

	h.cart.AddItem(r.Context(), item, req.Quantity, req.Customizations)
	writeJSON(w, http.StatusOK, h.cartState())
}

type updateCartItemRequest struct {
	Quantity            *int     `json:"quantity"`
	Customizations      []string `json:"customizations"`
	SpecialInstructions *string  `json:"specialInstructions"`
}

func (h *HTTPHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lineID := mux.Vars(r)["id"]

	// quantity <= 0 means remove; that routing is caller policy, not the store's
	if req.Quantity != nil && *req.Quantity <= 0 {
		h.cart.RemoveItem(r.Context(), lineID)
		writeJSON(w, http.StatusOK, h.cartState())
		return
	}

	if req.Quantity != nil && req.Customizations == nil && req.SpecialInstructions == nil {
		h.cart.UpdateQuantity(r.Context(), lineID, *req.Quantity)
	} else {
		h.cart.UpdateItem(r.Context(), lineID, cart.LineUpdate{
			Quantity:            req.Quantity,
			Customizations:      req.Customizations,
			SpecialInstructions: req.SpecialInstructions,
		})
	}
	writeJSON(w, http.StatusOK, h.cartState())
}

func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	h.cart.RemoveItem(r.Context(), mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, h.cartState())
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	writeJSON(w, http.StatusOK, h.cartState())
}

// --- auth ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Phone, req.Password, req.ConfirmPassword)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HTTPHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.auth.Current()
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type profileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (h *HTTPHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.auth.UpdateProfile(r.Context(), auth.ProfileUpdate{Name: req.Name, Email: req.Email, Phone: req.Phone})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	user, _ := h.auth.Current()
	writeJSON(w, http.StatusOK, user)
}

func (h *HTTPHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var addr domain.DeliveryAddress
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.auth.AddAddress(r.Context(), addr); err != nil {
		writeStoreError(w, err)
		return
	}
	user, _ := h.auth.Current()
	writeJSON(w, http.StatusOK, user.Addresses)
}

func (h *HTTPHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	var addr domain.DeliveryAddress
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	addr.ID = mux.Vars(r)["id"]

	if err := h.auth.UpdateAddress(r.Context(), addr); err != nil {
		writeStoreError(w, err)
		return
	}
	user, _ := h.auth.Current()
	writeJSON(w, http.StatusOK, user.Addresses)
}

func (h *HTTPHandler) RemoveAddress(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.RemoveAddress(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	user, _ := h.auth.Current()
	writeJSON(w, http.StatusOK, user.Addresses)
}

func (h *HTTPHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.AddFavorite(r.Context(), mux.Vars(r)["itemId"]); err != nil {
		writeStoreError(w, err)
		return
	}
	user, _ := h.auth.Current()
	writeJSON(w, http.StatusOK, user.Preferences.FavoriteItems)
}

func (h *HTTPHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.RemoveFavorite(r.Context(), mux.Vars(r)["itemId"]); err != nil {
		writeStoreError(w, err)
		return
	}
	user, _ := h.auth.Current()
	writeJSON(w, http.StatusOK, user.Preferences.FavoriteItems)
}

// --- checkout ---

type checkoutStateResponse struct {
	Step  checkout.Step          `json:"step"`
	Mode  domain.FulfillmentMode `json:"mode"`
	Quote checkout.Quote         `json:"quote"`
}

func (h *HTTPHandler) checkoutState() checkoutStateResponse {
	return checkoutStateResponse{Step: h.flow.Step(), Mode: h.flow.Mode(), Quote: h.flow.Quote()}
}

func (h *HTTPHandler) BeginCheckout(w http.ResponseWriter, r *http.Request) {
	if err := h.flow.Begin(); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.checkoutState())
}

type deliveryRequest struct {
	Mode domain.FulfillmentMode `json:"mode"`
	Info domain.DeliveryInfo    `json:"info"`
}

func (h *HTTPHandler) SubmitDelivery(w http.ResponseWriter, r *http.Request) {
	var req deliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Mode == "" {
		req.Mode = domain.FulfillmentDelivery
	}

	if err := h.flow.SubmitDeliveryInfo(req.Mode, req.Info); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.checkoutState())
}

func (h *HTTPHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var info domain.PaymentInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	info.CardNumber = checkout.FormatCardNumber(info.CardNumber)

	if err := h.flow.SubmitPaymentInfo(info); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.checkoutState())
}

func (h *HTTPHandler) CheckoutBack(w http.ResponseWriter, r *http.Request) {
	if err := h.flow.Back(); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.checkoutState())
}

func (h *HTTPHandler) CheckoutQuote(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.flow.Quote())
}

func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.flow.PlaceOrder(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// --- orders ---

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.history.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if list == nil {
		list = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, list)
}

// --- admin ---

func (h *HTTPHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	adminUser, err := h.admin.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adminUser)
}

func (h *HTTPHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	h.admin.Logout(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HTTPHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.admin.Current(); !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	stats, err := h.admin.FetchDashboardStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// --- helpers ---

type errorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// writeStoreError maps store sentinel errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	var verr *checkout.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: verr.Error(), Fields: verr.Fields})
		return
	}

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "cart is empty")
	case errors.Is(err, checkout.ErrWrongStep):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, checkout.ErrPaymentDeclined):
		writeError(w, http.StatusPaymentRequired, "payment declined")
	case errors.Is(err, auth.ErrEmptyCredentials), errors.Is(err, admin.ErrEmptyCredentials):
		writeError(w, http.StatusBadRequest, "please enter valid credentials")
	case errors.Is(err, auth.ErrPasswordMismatch):
		writeError(w, http.StatusBadRequest, "passwords do not match")
	case errors.Is(err, auth.ErrPasswordTooShort):
		writeError(w, http.StatusBadRequest, "password must be at least 6 characters")
	case errors.Is(err, auth.ErrNotAuthenticated):
		writeError(w, http.StatusUnauthorized, "not authenticated")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
