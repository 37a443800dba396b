package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/qudous44/tiktok-server/internal/domain"
	"github.com/qudous44/tiktok-server/internal/domain/entity"
	"github.com/qudous44/tiktok-server/internal/domain/valueobject"
)

// BuildOptions parameterizes event construction. All fields come from static
// configuration; the builder itself holds no state.
type BuildOptions struct {
	// DefaultCurrency is used when the order omits its currency.
	DefaultCurrency string

	// PageURLFallback is reported when the order has neither a status URL
	// nor a shop domain. Operator-configured, never a shipped literal.
	PageURLFallback string

	// TimestampSource selects receipt time or order creation time.
	TimestampSource string
}

// MapContents projects the order's line items into the events API contents
// schema. Empty input yields empty output. A line item whose price cannot be
// parsed rejects the whole order: forwarding a NaN value downstream would be
// silently dropped by the platform.
func MapContents(items []entity.LineItem) ([]entity.ContentItem, error) {
	contents := make([]entity.ContentItem, 0, len(items))
	for _, item := range items {
		price, err := parsePrice(item.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: content %q: %v", domain.ErrInvalidPrice, item.ContentID(), err)
		}
		contents = append(contents, entity.ContentItem{
			ContentID:   item.ContentID(),
			ContentType: domain.ContentTypeProduct,
			ContentName: item.Title,
			Quantity:    item.Quantity,
			Price:       price,
		})
	}
	return contents, nil
}

// BuildEvent assembles the outbound Purchase event from an order. It is a
// pure function of its inputs; now supplies the receipt timestamp.
func BuildEvent(order *entity.Order, now time.Time, opts BuildOptions) (*entity.ConversionEvent, error) {
	contents, err := MapContents(order.LineItems)
	if err != nil {
		return nil, err
	}

	value, err := parsePrice(order.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: total price: %v", domain.ErrInvalidPrice, err)
	}

	currency := order.Currency
	if currency == "" {
		currency = opts.DefaultCurrency
	}

	event := &entity.ConversionEvent{
		Event: domain.EventNamePurchase,
		// The platform deduplicates retried webhooks on this id, so it must
		// be derived from the order alone.
		EventID:   strconv.FormatInt(order.ID, 10),
		Timestamp: eventTimestamp(order, now, opts.TimestampSource),
		Context: entity.EventContext{
			Page:      entity.PageContext{URL: order.PageURL(opts.PageURLFallback)},
			User:      hashedUser(order),
			UserAgent: order.UserAgent(),
			IP:        order.BrowserIP,
		},
		Properties: entity.EventProperties{
			Contents: contents,
			Currency: currency,
			Value:    value,
			Category: firstProductType(order.LineItems),
		},
	}
	return event, nil
}

func hashedUser(order *entity.Order) entity.UserContext {
	var user entity.UserContext
	if digest := valueobject.HashLower(order.ContactEmail()); digest != "" {
		user.HashedEmails = append(user.HashedEmails, digest)
	}
	if digest := valueobject.HashLower(order.ContactPhone()); digest != "" {
		user.HashedPhones = append(user.HashedPhones, digest)
	}
	return user
}

func eventTimestamp(order *entity.Order, now time.Time, source string) int64 {
	if source == domain.TimestampSourceOrder {
		if created, ok := order.CreatedTime(); ok {
			return created.Unix()
		}
	}
	return now.Unix()
}

func firstProductType(items []entity.LineItem) string {
	for _, item := range items {
		if item.ProductType != "" {
			return item.ProductType
		}
	}
	return ""
}

func parsePrice(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("not a finite number: %q", raw)
	}
	return value, nil
}
