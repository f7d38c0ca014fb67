package session

import (
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/localeats/localeats-cli/internal/logger"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/shopspring/decimal"
)

// Session - контейнер состояния сессии: токен, пользователь, избранное,
// корзина и флаги. Передаётся явно через композицию, глобальных синглтонов нет.
// Команды интерфейса выполняются вне основного цикла, поэтому доступ под мьютексом.
type Session struct {
	mu sync.RWMutex

	token       string
	tokenExpiry time.Time
	user        *models.User

	favoriteIDs map[string]struct{}
	cart        []models.OrderItem

	// флаги уровня сессии (баннеры и т.п.), сбрасываются при выходе
	flags map[string]bool
}

func NewSession() *Session {
	return &Session{
		favoriteIDs: make(map[string]struct{}),
		flags:       make(map[string]bool),
	}
}

// SetToken - сохраняет токен авторизации, срок действия читается из самого JWT.
// Подпись не проверяется: владелец ключа - сервер, клиенту нужен только exp.
func (s *Session) SetToken(token string) {
	expiry := time.Time{}
	parsed, err := jwt.ParseString(token, jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		logger.Warn("Failed to parse session token", err)
	} else {
		expiry = parsed.Expiration()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.tokenExpiry = expiry
}

// Token - реализация client.TokenSource
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Expired - проверка, что срок действия токена истёк
func (s *Session) Expired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return true
	}
	return !s.tokenExpiry.IsZero() && time.Now().After(s.tokenExpiry)
}

// SetUser - сохраняет профиль текущего пользователя
func (s *Session) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// User - профиль текущего пользователя (nil до входа)
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated - проверка, что пользователь вошёл в систему
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// SetFavorites - замена набора идентификаторов избранного
func (s *Session) SetFavorites(restaurantIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favoriteIDs = make(map[string]struct{}, len(restaurantIDs))
	for _, id := range restaurantIDs {
		s.favoriteIDs[id] = struct{}{}
	}
}

// AddFavorite - добавление идентификатора в набор избранного
func (s *Session) AddFavorite(restaurantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favoriteIDs[restaurantID] = struct{}{}
}

// RemoveFavorite - удаление идентификатора из набора избранного
func (s *Session) RemoveFavorite(restaurantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.favoriteIDs, restaurantID)
}

// IsFavorite - проверка, что ресторан в избранном
func (s *Session) IsFavorite(restaurantID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favoriteIDs[restaurantID]
	return ok
}

// AddToCart - добавление позиций в корзину
func (s *Session) AddToCart(items ...models.OrderItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = append(s.cart, items...)
}

// Cart - копия содержимого корзины
func (s *Session) Cart() []models.OrderItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.OrderItem, len(s.cart))
	copy(items, s.cart)
	return items
}

// CartTotal - суммарная стоимость позиций корзины
func (s *Session) CartTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, item := range s.cart {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// ClearCart - очистка корзины
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// SetFlag - установка флага уровня сессии
func (s *Session) SetFlag(name string, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[name] = value
}

// Flag - чтение флага уровня сессии
func (s *Session) Flag(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[name]
}

// Reset - полный сброс сессии при выходе пользователя
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.tokenExpiry = time.Time{}
	s.user = nil
	s.favoriteIDs = make(map[string]struct{})
	s.cart = nil
	s.flags = make(map[string]bool)
}
