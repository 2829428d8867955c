// Command smoke walks the full order journey against a running server:
// browse the menu, fill a cart, check out, and confirm the order landed in
// history. Run it after deploying a storage backend change.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/savoria/storefront/internal/core/domain"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	flag.Parse()

	client := &http.Client{Timeout: 30 * time.Second}
	start := time.Now()

	var items []domain.MenuItem
	mustGet(client, *baseURL+"/api/menu?available=true", &items)
	if len(items) == 0 {
		log.Fatal("FAIL: no available menu items")
	}
	item := items[0]

	var cart struct {
		Items     []domain.CartLine `json:"items"`
		Total     float64           `json:"total"`
		ItemCount int               `json:"itemCount"`
	}
	mustPost(client, *baseURL+"/api/cart/items", map[string]interface{}{
		"menuItemId": item.ID,
		"quantity":   2,
	}, &cart)
	if cart.ItemCount != 2 {
		log.Fatalf("FAIL: expected item count 2, got %d", cart.ItemCount)
	}

	mustPost(client, *baseURL+"/api/checkout/begin", nil, nil)
	mustPost(client, *baseURL+"/api/checkout/delivery", map[string]interface{}{
		"mode": "pickup",
		"info": map[string]string{
			"fullName": "Smoke Tester",
			"phone":    "555-0100",
			"email":    "smoke@example.com",
		},
	}, nil)
	mustPost(client, *baseURL+"/api/checkout/payment", map[string]string{
		"cardNumber":     "4111111111111111",
		"expiryDate":     "12/30",
		"cvv":            "123",
		"cardholderName": "Smoke Tester",
	}, nil)

	var order domain.Order
	mustPost(client, *baseURL+"/api/checkout/place-order", nil, &order)
	if order.ID == "" {
		log.Fatal("FAIL: placed order has no ID")
	}
	if order.DeliveryFee != 0 {
		log.Fatalf("FAIL: pickup order charged delivery fee %.2f", order.DeliveryFee)
	}

	var history []domain.Order
	mustGet(client, *baseURL+"/api/orders", &history)
	found := false
	for _, o := range history {
		if o.ID == order.ID {
			found = true
			break
		}
	}
	if !found {
		log.Fatalf("FAIL: order %s missing from history", order.ID)
	}

	mustGet(client, *baseURL+"/api/cart", &cart)
	if cart.ItemCount != 0 {
		log.Fatalf("FAIL: cart not cleared after order, count %d", cart.ItemCount)
	}

	fmt.Println("========== SMOKE TEST RESULTS ==========")
	fmt.Printf("Order ID:    %s\n", order.ID)
	fmt.Printf("Total:       %.2f\n", order.Total)
	fmt.Printf("Duration:    %v\n", time.Since(start))
	fmt.Println("========================================")
	fmt.Println("PASS: full order journey completed")
}

func mustGet(client *http.Client, url string, out interface{}) {
	resp, err := client.Get(url)
	if err != nil {
		log.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Fatalf("GET %s: decode: %v", url, err)
		}
	}
}

func mustPost(client *http.Client, url string, body interface{}, out interface{}) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			log.Fatalf("POST %s: encode: %v", url, err)
		}
	}
	resp, err := client.Post(url, "application/json", &buf)
	if err != nil {
		log.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("POST %s: status %d", url, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Fatalf("POST %s: decode: %v", url, err)
		}
	}
}
