package internal

import (
	"github.com/shopspring/decimal"

	"github.com/ordersdesk/orderboard/internal/model"
)

// Tab identifies one of the three detail-panel tabs.
type Tab string

const (
	TabTrack Tab = "track"
	TabUser  Tab = "user"
	TabMap   Tab = "map"
)

// LoadScope selects which loading indicator a pipeline drives.
type LoadScope string

const (
	LoadOrders   LoadScope = "order"
	LoadProducts LoadScope = "product"
)

// IView is the presentation collaborator. Render calls are synchronous,
// side-effecting and non-failing; extract calls read the current form
// state back out. The orchestrator owns all data, the view owns pixels.
type IView interface {
	RenderSidebar(orders []model.Order, activeID string)
	RenderOrderCount(n int)
	RenderHeader(order model.Order)
	RenderForm(order model.Order, tab Tab)
	RenderTable(products []model.Product, total decimal.Decimal)
	RenderProductCount(n int)
	RenderSortIndicator(ascending bool)
	RenderEmptyState()
	ShowLoading(scope LoadScope)
	HideLoading(scope LoadScope)
	ShowError(message string)

	// ShipToValues returns the edited shipping-address form values in
	// the fixed key order name, address, ZIP, region, country.
	ShipToValues() [5]string
	OrderFormValues() model.OrderInput
	ProductFormValues() model.ProductInput
	OrderFilterText() string
	ProductFilterText() string
}
