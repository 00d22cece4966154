package dto

// ServiceItem is the reduced catalog-service projection exposed by the API.
type ServiceItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
