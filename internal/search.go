package internal

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/ordersdesk/orderboard/internal/model"
)

// normalize lowercases and strips all whitespace. Both the query and the
// rendered field text go through it, so " urg ENT " matches "Urgent" and
// "Kevin Grant" matches "Kevin Grant" regardless of spacing.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func matches(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(normalize(f), query) {
			return true
		}
	}
	return false
}

// FilterOrders keeps the orders whose rendered sidebar fields contain
// the query as a substring. An empty query keeps everything.
func FilterOrders(orders []model.Order, query string) []model.Order {
	q := normalize(query)
	if q == "" {
		return orders
	}

	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if matches(q,
			"Order "+o.ID,
			o.Summary.CreatedAt,
			o.Summary.Customer,
			DisplayStatus(o.Summary.Status).Label,
			"Shipped: "+FormatDate(o.Summary.ShippedAt),
		) {
			result = append(result, o)
		}
	}
	return result
}

// FilterProducts keeps the rows whose rendered cell text contains the
// query as a substring.
func FilterProducts(products []model.Product, query string) []model.Product {
	q := normalize(query)
	if q == "" {
		return products
	}

	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matches(q,
			p.Name,
			p.ID,
			p.Price.String(),
			p.Currency,
			strconv.Itoa(p.Quantity),
			p.TotalPrice.String(),
		) {
			result = append(result, p)
		}
	}
	return result
}

// SortProductsByName returns a copy sorted by the rendered product name.
// Plain string comparison, no locale awareness, ties in unspecified order.
func SortProductsByName(products []model.Product, ascending bool) []model.Product {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)

	sort.Slice(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].Name > sorted[j].Name
	})
	return sorted
}

// TotalPrice folds the line totals of a product table. It is recomputed
// on every table refresh and never persisted.
func TotalPrice(products []model.Product) decimal.Decimal {
	total := decimal.NewFromInt(0)
	for _, p := range products {
		total = total.Add(p.TotalPrice)
	}
	return total
}
