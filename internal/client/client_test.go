package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/catalog"
	"storefront/internal/client"
	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.Handler) (*client.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := client.New(client.Config{BaseURL: server.URL + "/api"})
	assert.NoError(t, err)
	return c, server
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func TestClientListProductsBuildsQueryAndEnriches(t *testing.T) {
	var gotQuery map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"gender":   r.URL.Query().Get("gender"),
			"category": r.URL.Query().Get("category"),
			"size":     r.URL.Query().Get("size"),
			"material": r.URL.Query().Get("material"),
			"page":     r.URL.Query().Get("page"),
			"limit":    r.URL.Query().Get("limit"),
		}
		writeData(w, http.StatusOK, map[string]interface{}{
			"items": []models.Product{
				{ID: "p-1", Name: "Runner Classic", Price: 98, OriginalPrice: 98},
			},
			"totalCount": 1,
		})
	})
	c, _ := newTestClient(t, mux)

	f := catalog.FilterState{
		Gender:     models.GenderMen,
		Categories: []string{"sale"},
		Sizes:      []string{"270", "280"},
		Materials:  []string{"wool"},
	}
	list, err := c.ListProducts(context.Background(), f, 2, 20)
	assert.NoError(t, err)
	assert.Equal(t, 1, list.TotalCount)
	assert.Len(t, list.Items, 1)

	assert.Equal(t, "men", gotQuery["gender"])
	assert.Equal(t, "sale", gotQuery["category"])
	assert.Equal(t, "270,280", gotQuery["size"])
	assert.Equal(t, "wool", gotQuery["material"])
	assert.Equal(t, "2", gotQuery["page"])
	assert.Equal(t, "20", gotQuery["limit"])
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products/missing", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "product not found")
	})
	c, _ := newTestClient(t, mux)

	_, err := c.GetProduct(context.Background(), "missing")
	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "product not found", apiErr.Message)
}

func TestClientCartMapsTotalPrice(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, map[string]interface{}{
			"items": []models.CartItem{
				{ID: "line-1", ProductID: "p-1", Size: 270, Price: 98, Quantity: 2},
			},
			"totalPrice": 196.0,
		})
	})
	c, _ := newTestClient(t, mux)

	view, err := c.Cart(context.Background())
	assert.NoError(t, err)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, 196.0, view.Total)
	assert.Equal(t, 2, view.ItemCount())
}

func TestClientUnauthorizedCallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "session expired")
	})
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	})
	c, _ := newTestClient(t, mux)

	var fired int
	c.OnUnauthorized(func() { fired++ })

	_, err := c.Cart(context.Background())
	assert.ErrorIs(t, err, client.ErrSessionExpired)
	assert.Equal(t, 1, fired)

	// A rejected login reports the API error without firing the callback.
	_, err = c.Login(context.Background(), "demo@storefront.local", "wrong")
	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 1, fired)
}

func TestClientSessionCookieRoundTrip(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "storefront_session", Value: "token-123", Path: "/"})
		writeData(w, http.StatusOK, map[string]interface{}{
			"user": models.User{ID: "u-1", Email: "demo@storefront.local"},
		})
	})
	var gotCookie string
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("storefront_session"); err == nil {
			gotCookie = cookie.Value
		}
		writeData(w, http.StatusOK, map[string]interface{}{
			"user": models.User{ID: "u-1"},
		})
	})
	c, _ := newTestClient(t, mux)

	user, err := c.Login(context.Background(), "demo@storefront.local", "demo1234")
	assert.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)

	// The cookie from login rides on the next request automatically.
	_, err = c.Me(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "token-123", gotCookie)

	// And is exposed for session persistence.
	cookies := c.Cookies()
	assert.NotEmpty(t, cookies)
}

func TestClientOrdersToleratesBareArray(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, []models.Order{{ID: "o-1"}, {ID: "o-2"}})
	})
	c, _ := newTestClient(t, mux)

	orders, err := c.Orders(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, "o-1", orders[0].ID)
}

func TestClientAdminValidatesBeforeSending(t *testing.T) {
	var requests int
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeData(w, http.StatusOK, nil)
	})
	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	_, err := c.UpdateProductDiscount(ctx, "p-1", 1.5, nil, nil)
	assert.ErrorIs(t, err, client.ErrDiscountRateOutOfRange)

	_, err = c.UpdateProductSizes(ctx, "p-1", nil)
	assert.ErrorIs(t, err, client.ErrNoSizes)

	assert.Equal(t, 0, requests)

	// A rate of exactly 1 is a valid 100% discount and goes through.
	_, err = c.UpdateProductDiscount(ctx, "p-1", 1, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, requests)
}
