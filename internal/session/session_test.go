package session

import (
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/localeats/localeats-cli/internal/config"
	"github.com/localeats/localeats-cli/internal/logger"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/shopspring/decimal"
)

func initTestLogger(t *testing.T) {
	t.Helper()
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Client.LogLevel, ""); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}
}

func signedToken(t *testing.T, expiration time.Time) string {
	t.Helper()
	token, err := jwt.NewBuilder().
		Subject("user-1").
		Expiration(expiration).
		Build()
	if err != nil {
		t.Fatalf("can't build token: %v", err)
	}
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte("server-side-secret")))
	if err != nil {
		t.Fatalf("can't sign token: %v", err)
	}
	return string(signed)
}

func TestSession_TokenExpiry(t *testing.T) {
	initTestLogger(t)

	testCases := []struct {
		TestName        string
		Token           string
		ExpectedExpired bool
	}{
		{
			TestName:        "Success. Token valid for an hour #1",
			Token:           signedToken(t, time.Now().Add(time.Hour)),
			ExpectedExpired: false,
		},
		{
			TestName:        "Error. Token expired an hour ago #2",
			Token:           signedToken(t, time.Now().Add(-time.Hour)),
			ExpectedExpired: true,
		},
		{
			TestName:        "Success. Opaque token has no expiry #3",
			Token:           "not-a-jwt",
			ExpectedExpired: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			userSession := NewSession()
			userSession.SetToken(tc.Token)
			if got := userSession.Expired(); got != tc.ExpectedExpired {
				t.Errorf("Expected expired=%v, got %v", tc.ExpectedExpired, got)
			}
		})
	}
}

func TestSession_EmptyTokenIsExpired(t *testing.T) {
	initTestLogger(t)

	userSession := NewSession()
	if !userSession.Expired() {
		t.Error("Expected fresh session to report expired token")
	}
	if userSession.Authenticated() {
		t.Error("Expected fresh session to be unauthenticated")
	}
}

func TestSession_Reset(t *testing.T) {
	initTestLogger(t)

	userSession := NewSession()
	userSession.SetToken(signedToken(t, time.Now().Add(time.Hour)))
	userSession.SetUser(&models.User{ID: "user-1", Email: "alice@example.com"})
	userSession.AddFavorite("rest-1")
	userSession.AddToCart(models.OrderItem{ID: "item-1", Name: "Pad Thai", Quantity: 1})
	userSession.SetFlag("promo_banner_dismissed", true)

	if !userSession.Authenticated() {
		t.Fatal("Expected authenticated session before reset")
	}

	userSession.Reset()

	if userSession.Authenticated() {
		t.Error("Expected unauthenticated session after reset")
	}
	if userSession.IsFavorite("rest-1") {
		t.Error("Expected favorites to be cleared")
	}
	if len(userSession.Cart()) != 0 {
		t.Error("Expected cart to be cleared")
	}
	if userSession.Flag("promo_banner_dismissed") {
		t.Error("Expected flags to be cleared")
	}
}

func TestSession_CartTotal(t *testing.T) {
	initTestLogger(t)

	userSession := NewSession()
	userSession.AddToCart(
		models.OrderItem{ID: "item-1", Name: "Pad Thai", Quantity: 2, UnitPrice: decimal.NewFromFloat(12.50)},
		models.OrderItem{ID: "item-2", Name: "Spring Rolls", Quantity: 1, UnitPrice: decimal.NewFromFloat(4.25)},
	)

	if total := userSession.CartTotal(); total.StringFixed(2) != "29.25" {
		t.Errorf("Expected cart total '29.25', got '%s'", total.StringFixed(2))
	}

	userSession.ClearCart()
	if !userSession.CartTotal().IsZero() {
		t.Error("Expected zero total after clearing the cart")
	}
}

func TestSession_FavoritesSet(t *testing.T) {
	initTestLogger(t)

	userSession := NewSession()
	userSession.SetFavorites([]string{"rest-1", "rest-2"})

	if !userSession.IsFavorite("rest-1") || !userSession.IsFavorite("rest-2") {
		t.Error("Expected both restaurants to be favorite")
	}
	userSession.RemoveFavorite("rest-1")
	if userSession.IsFavorite("rest-1") {
		t.Error("Expected rest-1 to be removed")
	}

	// замена набора вытесняет прежние отметки
	userSession.SetFavorites([]string{"rest-3"})
	if userSession.IsFavorite("rest-2") {
		t.Error("Expected rest-2 to be gone after replacement")
	}
	if !userSession.IsFavorite("rest-3") {
		t.Error("Expected rest-3 to be favorite")
	}
}
