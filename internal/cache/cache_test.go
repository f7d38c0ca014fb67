package cache

import (
	"net/url"
	"testing"
)

func TestKey(t *testing.T) {
	testCases := []struct {
		TestName string
		Resource string
		Query    url.Values
		Expected string
	}{
		{
			TestName: "Resource without query #1",
			Resource: "restaurants",
			Query:    nil,
			Expected: "restaurants",
		},
		{
			TestName: "Query parameters are sorted #2",
			Resource: "restaurants",
			Query:    url.Values{"sort": {"rating"}, "cuisine": {"thai"}},
			Expected: "restaurants?cuisine=thai&sort=rating",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := Key(tc.Resource, tc.Query); got != tc.Expected {
				t.Errorf("Expected key '%s', got '%s'", tc.Expected, got)
			}
		})
	}
}

func TestCache_InvalidateResource(t *testing.T) {
	store := NewCache()
	store.Set("orders", "list")
	store.Set("orders?page=2", "second page")
	store.Set("orders/order-1", "detail")
	store.Set("restaurants", "unrelated")

	store.InvalidateResource("orders")

	for _, key := range []string{"orders", "orders?page=2", "orders/order-1"} {
		if _, ok := store.Get(key); ok {
			t.Errorf("Expected '%s' to be invalidated", key)
		}
	}
	if _, ok := store.Get("restaurants"); !ok {
		t.Error("Expected unrelated resource to survive")
	}
}

func TestCache_LastWriteWins(t *testing.T) {
	store := NewCache()
	store.Set("restaurants?q=pizza", "stale")
	store.Set("restaurants?q=pizza", "fresh")

	value, ok := store.Get("restaurants?q=pizza")
	if !ok {
		t.Fatal("Expected cached value")
	}
	if value != "fresh" {
		t.Errorf("Expected latest write to win, got '%v'", value)
	}
}

func TestCache_Clear(t *testing.T) {
	store := NewCache()
	store.Set("orders", "list")
	store.Set("favorites", "list")

	store.Clear()

	if _, ok := store.Get("orders"); ok {
		t.Error("Expected cache to be empty after clear")
	}
	if _, ok := store.Get("favorites"); ok {
		t.Error("Expected cache to be empty after clear")
	}
}
