package domain

import "time"

type AdminRole string

const (
	AdminRoleSuperAdmin AdminRole = "super_admin"
	AdminRoleManager    AdminRole = "manager"
	AdminRoleStaff      AdminRole = "staff"
	AdminRoleKitchen    AdminRole = "kitchen"
)

// AdminPermission grants a set of actions on one dashboard module.
type AdminPermission struct {
	Module  string   `json:"module"`
	Actions []string `json:"actions"`
}

// AdminUser is the restaurant-side identity. Entirely independent of the
// customer User lifecycle.
type AdminUser struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	Name         string            `json:"name"`
	Role         AdminRole         `json:"role"`
	Permissions  []AdminPermission `json:"permissions"`
	RestaurantID string            `json:"restaurantId"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// PopularItem is one row of the dashboard's top-sellers table.
type PopularItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	OrderCount int     `json:"orderCount"`
	Revenue    float64 `json:"revenue"`
}

// RecentOrder is the trimmed order view shown on the dashboard.
type RecentOrder struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	EstimatedTime int         `json:"estimatedTime"` // minutes
}

// SalesPoint is one bucket of the dashboard sales chart.
type SalesPoint struct {
	Date   string  `json:"date"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
}

// DashboardStats is the mock metrics snapshot served to the admin dashboard.
type DashboardStats struct {
	TodayOrders       int           `json:"todayOrders"`
	TodaySales        float64       `json:"todaySales"`
	TotalCustomers    int           `json:"totalCustomers"`
	AverageOrderValue float64       `json:"averageOrderValue"`
	PopularItems      []PopularItem `json:"popularItems"`
	RecentOrders      []RecentOrder `json:"recentOrders"`
	SalesChart        []SalesPoint  `json:"salesChart"`
}
