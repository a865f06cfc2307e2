package internal

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/ordersdesk/orderboard/internal/model"
)

// ConsoleView renders the order board as text. Form state the browser
// kept in inputs lives here as buffers the command loop fills before
// triggering a pipeline.
type ConsoleView struct {
	out    io.Writer
	mapKey string

	shipToForm    [5]string
	orderForm     model.OrderInput
	productForm   model.ProductInput
	orderFilter   string
	productFilter string
}

func NewConsoleView(out io.Writer, mapKey string) *ConsoleView {
	return &ConsoleView{out: out, mapKey: mapKey}
}

func (v *ConsoleView) RenderSidebar(orders []model.Order, activeID string) {
	fmt.Fprintln(v.out, "--- Orders ---")
	for _, o := range orders {
		marker := " "
		if o.ID == activeID {
			marker = "*"
		}
		status := DisplayStatus(o.Summary.Status)
		fmt.Fprintf(v.out, "%s Order %s | %s | %s | %s | Shipped: %s\n",
			marker, o.ID, o.Summary.CreatedAt, o.Summary.Customer,
			status.Label, FormatDate(o.Summary.ShippedAt))
	}
}

func (v *ConsoleView) RenderOrderCount(n int) {
	fmt.Fprintf(v.out, "%d Orders\n", n)
}

func (v *ConsoleView) RenderHeader(order model.Order) {
	fmt.Fprintf(v.out, "Order %s\n", order.ID)
	fmt.Fprintf(v.out, "Customer: %s\n", order.Summary.Customer)
	fmt.Fprintf(v.out, "Ordered: %s\n", FormatDate(order.Summary.CreatedAt))
	fmt.Fprintf(v.out, "Shipped: %s\n", FormatDate(order.Summary.ShippedAt))
}

func (v *ConsoleView) RenderForm(order model.Order, tab Tab) {
	switch tab {
	case TabUser:
		fmt.Fprintln(v.out, "Personal Information:")
		ci := order.CustomerInfo
		fmt.Fprintf(v.out, "First Name: %s\n", ci.FirstName)
		fmt.Fprintf(v.out, "Last Name: %s\n", ci.LastName)
		fmt.Fprintf(v.out, "Address: %s\n", ci.Address)
		fmt.Fprintf(v.out, "Phone: %s\n", ci.Phone)
		fmt.Fprintf(v.out, "Email: %s\n", ci.Email)
	case TabMap:
		fmt.Fprintln(v.out, "Shipping Map:")
		fmt.Fprintln(v.out, StaticMapURL(order.ShipTo, v.mapKey))
	default:
		fmt.Fprintln(v.out, "Shipping Address:")
		labels := [5]string{"Name", "Street", "ZIP Code / City", "Region", "Country"}
		values := order.ShipTo.Values()
		for i := range labels {
			fmt.Fprintf(v.out, "%s: %s\n", labels[i], values[i])
		}
	}
}

func (v *ConsoleView) RenderTable(products []model.Product, total decimal.Decimal) {
	w := tabwriter.NewWriter(v.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Product\tPrice\tQuantity\tTotal")
	for _, p := range products {
		fmt.Fprintf(w, "%s (%s)\t%s %s\t%d\t%s %s\n",
			p.Name, p.ID, p.Price, p.Currency, p.Quantity, p.TotalPrice, p.Currency)
	}
	w.Flush()
	fmt.Fprintf(v.out, "Total: %s EUR\n", total)
}

func (v *ConsoleView) RenderProductCount(n int) {
	fmt.Fprintf(v.out, "%d Line Items\n", n)
}

func (v *ConsoleView) RenderSortIndicator(ascending bool) {
	if ascending {
		fmt.Fprintln(v.out, "Product ▲")
	} else {
		fmt.Fprintln(v.out, "Product ▼")
	}
}

func (v *ConsoleView) RenderEmptyState() {
	fmt.Fprintln(v.out, "No orders")
}

func (v *ConsoleView) ShowLoading(scope LoadScope) {
	fmt.Fprintf(v.out, "loading %ss...\n", scope)
}

func (v *ConsoleView) HideLoading(scope LoadScope) {
	fmt.Fprintf(v.out, "%ss loaded\n", scope)
}

func (v *ConsoleView) ShowError(message string) {
	fmt.Fprintf(v.out, "error: %s\n", message)
}

func (v *ConsoleView) ShipToValues() [5]string {
	return v.shipToForm
}

func (v *ConsoleView) OrderFormValues() model.OrderInput {
	return v.orderForm
}

func (v *ConsoleView) ProductFormValues() model.ProductInput {
	return v.productForm
}

func (v *ConsoleView) OrderFilterText() string {
	return v.orderFilter
}

func (v *ConsoleView) ProductFilterText() string {
	return v.productFilter
}

// SetShipToForm fills the shipping-address buffer from values in the
// fixed key order.
func (v *ConsoleView) SetShipToForm(values [5]string) {
	v.shipToForm = values
}

func (v *ConsoleView) SetOrderForm(input model.OrderInput) {
	v.orderForm = input
}

func (v *ConsoleView) SetProductForm(input model.ProductInput) {
	v.productForm = input
}

func (v *ConsoleView) SetOrderFilter(text string) {
	v.orderFilter = text
}

func (v *ConsoleView) SetProductFilter(text string) {
	v.productFilter = text
}
