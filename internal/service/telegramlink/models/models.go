package models

// LinkStatusResponse состояние привязки Telegram для вызывающего
type LinkStatusResponse struct {
	Linked   bool   `json:"linked"`
	LinkCode string `json:"linkCode"`
}
