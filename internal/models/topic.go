package models

// Topic represents an article topic
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

// TableCounts reports row totals per table for the metrics endpoint
type TableCounts struct {
	Topics   int `json:"topics"`
	Articles int `json:"articles"`
	Comments int `json:"comments"`
	Users    int `json:"users"`
}
