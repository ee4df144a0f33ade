package domain

// Envelope is the uniform response wrapper every backend endpoint returns.
// Code 200 signals success; anything else is a business failure and Message
// carries the user-facing text.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type PaginatedData[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Pages    int `json:"pages"`
}
