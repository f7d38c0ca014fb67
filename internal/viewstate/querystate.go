package viewstate

import (
	"net/url"
	"strconv"
)

// Варианты сортировки списка ресторанов
const (
	SortRecommended = "recommended"
	SortRating      = "rating"
	SortDeliveryFee = "delivery_fee"
	SortDistance    = "distance"
)

// Query - состояние фильтров, сортировки и пагинации представления.
// Кодируется в строку запроса: состояние можно сохранить и передать,
// представление восстанавливается из той же строки.
type Query struct {
	Search       string
	Cuisine      string
	MinRating    float64
	MaxPrice     int
	OpenNow      bool
	HasPromotion bool
	Sort         string
	Page         int
	Tab          string
}

// Encode - кодирование состояния в параметры запроса,
// значения по умолчанию опускаются
func (q Query) Encode() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set("q", q.Search)
	}
	if q.Cuisine != "" {
		values.Set("cuisine", q.Cuisine)
	}
	if q.MinRating > 0 {
		values.Set("min_rating", strconv.FormatFloat(q.MinRating, 'f', 1, 64))
	}
	if q.MaxPrice > 0 {
		values.Set("max_price", strconv.Itoa(q.MaxPrice))
	}
	if q.OpenNow {
		values.Set("open_now", "true")
	}
	if q.HasPromotion {
		values.Set("promotion", "true")
	}
	if q.Sort != "" && q.Sort != SortRecommended {
		values.Set("sort", q.Sort)
	}
	if q.Page > 1 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Tab != "" {
		values.Set("tab", q.Tab)
	}
	return values
}

// Decode - восстановление состояния из параметров запроса,
// непригодные значения заменяются значениями по умолчанию
func Decode(values url.Values) Query {
	q := Query{Sort: SortRecommended, Page: 1}
	q.Search = values.Get("q")
	q.Cuisine = values.Get("cuisine")
	if rating, err := strconv.ParseFloat(values.Get("min_rating"), 64); err == nil && rating > 0 {
		q.MinRating = rating
	}
	if price, err := strconv.Atoi(values.Get("max_price")); err == nil && price > 0 {
		q.MaxPrice = price
	}
	q.OpenNow = values.Get("open_now") == "true"
	q.HasPromotion = values.Get("promotion") == "true"
	if sort := values.Get("sort"); sort != "" {
		q.Sort = sort
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 1 {
		q.Page = page
	}
	q.Tab = values.Get("tab")
	return q
}

// ActiveFilterCount - количество действующих фильтров для счётчика
// в заголовке списка; поиск, сортировка и страница фильтрами не считаются
func (q Query) ActiveFilterCount() int {
	count := 0
	if q.Cuisine != "" {
		count++
	}
	if q.MinRating > 0 {
		count++
	}
	if q.MaxPrice > 0 {
		count++
	}
	if q.OpenNow {
		count++
	}
	if q.HasPromotion {
		count++
	}
	return count
}
