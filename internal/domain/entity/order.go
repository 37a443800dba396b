package entity

import (
	"strconv"
	"time"

	"github.com/qudous44/tiktok-server/internal/domain"
)

// Order is the Shopify orders/create webhook payload, limited to the fields
// the conversion pipeline reads. All state is request-scoped and immutable
// after decoding.
type Order struct {
	ID              int64          `json:"id"`
	Email           string         `json:"email"`
	TotalPrice      string         `json:"total_price"`
	Currency        string         `json:"currency"`
	CreatedAt       string         `json:"created_at"`
	CancelledAt     string         `json:"cancelled_at"`
	FinancialStatus string         `json:"financial_status"`
	Test            bool           `json:"test"`
	OrderStatusURL  string         `json:"order_status_url"`
	Domain          string         `json:"domain"`
	BrowserIP       string         `json:"browser_ip"`
	Customer        *Customer      `json:"customer"`
	BillingAddress  *Address       `json:"billing_address"`
	ShippingAddress *Address       `json:"shipping_address"`
	ClientDetails   *ClientDetails `json:"client_details"`
	LineItems       []LineItem     `json:"line_items"`
}

// Customer is the order's customer record.
type Customer struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Address is a billing or shipping address; only the phone is used.
type Address struct {
	Phone string `json:"phone"`
}

// ClientDetails describes the buyer's browser session.
type ClientDetails struct {
	UserAgent string `json:"user_agent"`
}

// LineItem is one purchased product line.
type LineItem struct {
	ID          *int64 `json:"id"`
	ProductID   *int64 `json:"product_id"`
	VariantID   *int64 `json:"variant_id"`
	SKU         string `json:"sku"`
	Title       string `json:"title"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	ProductType string `json:"product_type"`
}

// ContentID returns the advertising-platform content identifier for the line:
// the first present of product_id, variant_id, sku, id, stringified. When all
// four are absent it returns domain.UndefinedContentID.
func (l LineItem) ContentID() string {
	switch {
	case l.ProductID != nil:
		return strconv.FormatInt(*l.ProductID, 10)
	case l.VariantID != nil:
		return strconv.FormatInt(*l.VariantID, 10)
	case l.SKU != "":
		return l.SKU
	case l.ID != nil:
		return strconv.FormatInt(*l.ID, 10)
	default:
		return domain.UndefinedContentID
	}
}

// IsTest reports whether Shopify flagged the order as a test order.
func (o *Order) IsTest() bool {
	return o.Test
}

// IsCancelled reports whether the order was cancelled or its payment undone.
func (o *Order) IsCancelled() bool {
	if o.CancelledAt != "" {
		return true
	}
	switch o.FinancialStatus {
	case "refunded", "voided":
		return true
	}
	return false
}

// ContactEmail returns the buyer email, preferring the order-level field over
// the customer record.
func (o *Order) ContactEmail() string {
	if o.Email != "" {
		return o.Email
	}
	if o.Customer != nil {
		return o.Customer.Email
	}
	return ""
}

// ContactPhone returns the buyer phone in fixed priority: customer, billing
// address, shipping address.
func (o *Order) ContactPhone() string {
	if o.Customer != nil && o.Customer.Phone != "" {
		return o.Customer.Phone
	}
	if o.BillingAddress != nil && o.BillingAddress.Phone != "" {
		return o.BillingAddress.Phone
	}
	if o.ShippingAddress != nil {
		return o.ShippingAddress.Phone
	}
	return ""
}

// PageURL returns the URL reported with the event: the order status page when
// present, else the shop domain, else the operator-configured fallback.
func (o *Order) PageURL(fallback string) string {
	if o.OrderStatusURL != "" {
		return o.OrderStatusURL
	}
	if o.Domain != "" {
		return "https://" + o.Domain
	}
	return fallback
}

// UserAgent returns the buyer's browser user agent when Shopify captured one.
func (o *Order) UserAgent() string {
	if o.ClientDetails == nil {
		return ""
	}
	return o.ClientDetails.UserAgent
}

// CreatedTime parses the order creation timestamp. The second return value is
// false when the field is absent or not RFC 3339.
func (o *Order) CreatedTime() (time.Time, bool) {
	if o.CreatedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, o.CreatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
