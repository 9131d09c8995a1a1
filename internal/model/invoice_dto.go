package model

import "github.com/factupro/invoice-api/internal/domain"

// CreateInvoiceRequest is the POST /invoice body. UserName is accepted for
// compatibility but ignored: the stored owner is always the caller's verified
// email.
type CreateInvoiceRequest struct {
	Content     string       `json:"Content"`
	UserName    string       `json:"UserName,omitempty"`
	Value       domain.Money `json:"Value"`
	Date        string       `json:"Date"`
	Description string       `json:"Description"`
	Category    string       `json:"Category"`
	ITBMSUSD    domain.Money `json:"ITBMSUSD"`
	Subtotal    domain.Money `json:"Subtotal"`
}

// CreateInvoiceResponse confirms a stored invoice, echoing the event that
// produced it.
type CreateInvoiceResponse struct {
	Message string `json:"message"`
	Event   Event  `json:"event"`
}

// MessageResponse is a plain confirmation or rejection message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries the text of an internal failure. The error text is
// diagnostic, not a stable contract.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
