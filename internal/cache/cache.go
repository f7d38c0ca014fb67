package cache

import (
	"net/url"
	"strings"
	"sync"
)

// Cache - хранилище ответов сервера, ключ - ресурс плюс параметры запроса.
// Последний разрешившийся ответ побеждает: перекрывающиеся запросы не
// отменяются, устаревший результат просто перезаписывается.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]interface{}
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]interface{})}
}

// Key - построение ключа кэша из ресурса и параметров
func Key(resource string, query url.Values) string {
	if len(query) == 0 {
		return resource
	}
	return resource + "?" + query.Encode()
}

// Get - чтение записи кэша
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	return value, ok
}

// Set - запись в кэш
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Invalidate - удаление записи, следующий запрос пойдёт на сервер
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidateResource - удаление всех записей ресурса независимо от параметров
func (c *Cache) InvalidateResource(resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key == resource || strings.HasPrefix(key, resource+"?") || strings.HasPrefix(key, resource+"/") {
			delete(c.entries, key)
		}
	}
}

// Clear - полная очистка кэша (выход пользователя)
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]interface{})
}
