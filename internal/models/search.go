package models

// Suggestion - подсказка поиска
type Suggestion struct {
	Text string `json:"text"`
	Kind string `json:"kind"` // restaurant | cuisine | dish
}

// RecentQuery - недавний поисковый запрос пользователя
type RecentQuery struct {
	Query string `json:"query"`
}
