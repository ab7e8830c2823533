// internal/models/order.go
package models

// CartItem is the durable cart snapshot entry, both on the wire
// (POST /api/checkout/email) and in client storage.
type CartItem struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

type Buyer struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty"`
	Note  string `json:"note,omitempty"`
}

type CheckoutRequest struct {
	Cart  []CartItem `json:"cart" validate:"required,min=1"`
	Buyer Buyer      `json:"buyer" validate:"required"`
}

type InquiryRequest struct {
	Slug    string `json:"slug" validate:"required"`
	Name    string `json:"name"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}
