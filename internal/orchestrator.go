package internal

import (
	"context"

	"go.uber.org/zap"

	"github.com/ordersdesk/orderboard/internal/model"
)

// Orchestrator maps user-triggered events onto fixed sequences of data
// client calls and render steps. It owns the application state the
// original kept in the DOM: the active order, the current product table
// and the filter inputs. Every mutation is followed by a re-fetch so
// only server-confirmed state is ever rendered.
type Orchestrator struct {
	client IDataClient
	view   IView
	logger *zap.SugaredLogger

	activeID  string
	order     model.Order
	orders    []model.Order
	products  []model.Product
	activeTab Tab

	sortCount int

	// generation is bumped on every selection change. A pipeline that
	// started under an older generation drops its render steps, so a
	// stale in-flight response cannot overwrite a newer selection.
	generation uint64
}

func NewOrchestrator(client IDataClient, view IView, logger *zap.SugaredLogger) *Orchestrator {
	return &Orchestrator{client: client, view: view, logger: logger, activeTab: TabTrack}
}

// ActiveOrderID returns the id of the order shown in the detail panel,
// or "" when no order is active.
func (o *Orchestrator) ActiveOrderID() string {
	return o.activeID
}

// InitialLoad fetches the full order list, selects the first order if
// one exists and fills the detail panel and product table.
func (o *Orchestrator) InitialLoad(ctx context.Context) error {
	gen := o.nextGeneration()

	orders, err := o.client.FetchAllOrders(ctx)
	if err != nil {
		return o.fail("initial load", "", err)
	}
	o.orders = orders
	o.view.RenderSidebar(orders, o.firstOrderID())
	o.view.RenderOrderCount(len(orders))

	if len(orders) == 0 {
		o.activeID = ""
		o.view.RenderEmptyState()
		return nil
	}
	o.activeID = orders[0].ID

	return o.loadActiveOrder(ctx, gen)
}

// SelectOrder handles a sidebar click: the clicked entry is marked
// active synchronously, then details and products are fetched. The
// track tab is forced active.
func (o *Orchestrator) SelectOrder(ctx context.Context, orderID string) error {
	o.activeID = orderID
	o.view.RenderSidebar(o.orders, orderID)
	gen := o.nextGeneration()

	return o.loadActiveOrder(ctx, gen)
}

// SwitchTab re-fetches the active order and renders the tab-specific
// subset of its fields. The re-fetch on every switch is deliberate:
// the panel always shows server-confirmed data.
func (o *Orchestrator) SwitchTab(ctx context.Context, tab Tab) error {
	if o.activeID == "" {
		return o.fail("switch tab", "", ErrNoActiveOrder)
	}
	gen := o.generation

	order, err := o.client.FetchOrderByID(ctx, o.activeID)
	if err != nil {
		return o.fail("switch tab", "", err)
	}
	if o.stale(gen) {
		return nil
	}

	o.order = order
	o.activeTab = tab
	o.view.RenderForm(order, tab)
	return nil
}

// SaveShippingAddress extracts the edited shipTo values in the fixed
// key order, writes them and re-fetches the order for rendering.
func (o *Orchestrator) SaveShippingAddress(ctx context.Context) error {
	if o.activeID == "" {
		return o.fail("save shipping address", "", ErrNoActiveOrder)
	}
	gen := o.generation
	update := model.ShipToUpdate{ShipTo: model.AddressFromValues(o.view.ShipToValues())}

	_, err := o.client.UpdateOrder(ctx, o.activeID, update)
	if err != nil {
		return o.fail("save shipping address", "", err)
	}

	order, err := o.client.FetchOrderByID(ctx, o.activeID)
	if err != nil {
		return o.fail("save shipping address", "", err)
	}
	if o.stale(gen) {
		return nil
	}

	o.order = order
	o.view.RenderHeader(order)
	o.view.RenderForm(order, o.activeTab)
	return nil
}

// AddOrder posts the new-order form and re-fetches the full list; the
// sidebar is re-rendered from scratch and no explicit re-selection is
// made, so whichever order the backend now reports first becomes active.
func (o *Orchestrator) AddOrder(ctx context.Context) error {
	input := o.view.OrderFormValues()
	o.view.ShowLoading(LoadOrders)

	_, err := o.client.CreateOrder(ctx, input)
	if err != nil {
		return o.fail("add order", LoadOrders, err)
	}

	orders, err := o.client.FetchAllOrders(ctx)
	if err != nil {
		return o.fail("add order", LoadOrders, err)
	}

	o.orders = orders
	o.activeID = o.firstOrderID()
	o.view.RenderSidebar(orders, o.activeID)
	o.view.RenderOrderCount(len(orders))
	o.view.HideLoading(LoadOrders)
	return nil
}

// DeleteOrder removes the active order, re-fetches the full list and
// resets the selection: empty list means no active order, otherwise the
// first rendered entry takes over.
func (o *Orchestrator) DeleteOrder(ctx context.Context) error {
	if o.activeID == "" {
		return o.fail("delete order", "", ErrNoActiveOrder)
	}
	o.view.ShowLoading(LoadOrders)
	o.nextGeneration()

	_, err := o.client.DeleteOrder(ctx, o.activeID)
	if err != nil {
		return o.fail("delete order", LoadOrders, err)
	}

	orders, err := o.client.FetchAllOrders(ctx)
	if err != nil {
		return o.fail("delete order", LoadOrders, err)
	}

	o.orders = orders
	o.activeID = o.firstOrderID()
	o.view.RenderSidebar(orders, o.activeID)
	o.view.RenderOrderCount(len(orders))
	if o.activeID == "" {
		o.view.RenderEmptyState()
	}
	o.view.HideLoading(LoadOrders)
	return nil
}

// AddProduct posts the product form stamped with the active order id,
// then re-fetches the order's products for rendering.
func (o *Orchestrator) AddProduct(ctx context.Context) error {
	if o.activeID == "" {
		return o.fail("add product", "", ErrNoActiveOrder)
	}
	input := o.view.ProductFormValues()
	o.view.ShowLoading(LoadProducts)
	gen := o.generation

	_, err := o.client.CreateProduct(ctx, o.activeID, input)
	if err != nil {
		return o.fail("add product", LoadProducts, err)
	}

	err = o.refreshProducts(ctx, gen)
	if err != nil {
		return o.fail("add product", LoadProducts, err)
	}
	o.view.HideLoading(LoadProducts)
	return nil
}

// DeleteProduct removes one line item and re-fetches the table.
func (o *Orchestrator) DeleteProduct(ctx context.Context, productID string) error {
	if o.activeID == "" {
		return o.fail("delete product", "", ErrNoActiveOrder)
	}
	o.view.ShowLoading(LoadProducts)
	gen := o.generation

	_, err := o.client.DeleteProduct(ctx, o.activeID, productID)
	if err != nil {
		return o.fail("delete product", LoadProducts, err)
	}

	err = o.refreshProducts(ctx, gen)
	if err != nil {
		return o.fail("delete product", LoadProducts, err)
	}
	o.view.HideLoading(LoadProducts)
	return nil
}

// SearchOrders re-fetches the full list, then applies the sidebar
// filter: case-insensitive, whitespace-stripped substring match over
// the rendered summary fields.
func (o *Orchestrator) SearchOrders(ctx context.Context) error {
	orders, err := o.client.FetchAllOrders(ctx)
	if err != nil {
		return o.fail("search orders", "", err)
	}

	o.orders = orders
	visible := FilterOrders(orders, o.view.OrderFilterText())
	o.view.RenderSidebar(visible, o.activeID)
	o.view.RenderOrderCount(len(visible))
	return nil
}

// RefreshOrderSearch clears the filter and restores all entries.
func (o *Orchestrator) RefreshOrderSearch(ctx context.Context) error {
	orders, err := o.client.FetchAllOrders(ctx)
	if err != nil {
		return o.fail("refresh order search", "", err)
	}

	o.orders = orders
	o.view.RenderSidebar(orders, o.activeID)
	o.view.RenderOrderCount(len(orders))
	return nil
}

// SearchProducts filters the current table rows client-side; no fetch.
// The displayed total keeps covering the full table.
func (o *Orchestrator) SearchProducts() {
	visible := FilterProducts(o.products, o.view.ProductFilterText())
	o.view.RenderTable(visible, TotalPrice(o.products))
	o.view.RenderProductCount(len(visible))
}

// SortProducts toggles the product-name sort direction and re-renders
// the table from the authoritative row order, which stays untouched.
// Odd activations sort ascending, even ones descending.
func (o *Orchestrator) SortProducts() {
	o.sortCount++
	ascending := o.sortCount%2 != 0

	sorted := SortProductsByName(o.products, ascending)
	o.view.RenderTable(sorted, TotalPrice(o.products))
	o.view.RenderSortIndicator(ascending)
}

// loadActiveOrder is the shared tail of the initial-load and select
// pipelines: order details, then products, each gated on staleness.
func (o *Orchestrator) loadActiveOrder(ctx context.Context, gen uint64) error {
	order, err := o.client.FetchOrderByID(ctx, o.activeID)
	if err != nil {
		return o.fail("load order", "", err)
	}
	if o.stale(gen) {
		return nil
	}

	o.order = order
	o.activeTab = TabTrack
	o.view.RenderHeader(order)
	o.view.RenderForm(order, TabTrack)

	err = o.refreshProducts(ctx, gen)
	if err != nil {
		return o.fail("load order", "", err)
	}
	return nil
}

func (o *Orchestrator) refreshProducts(ctx context.Context, gen uint64) error {
	products, err := o.client.FetchOrderProductsByID(ctx, o.activeID)
	if err != nil {
		return err
	}
	if o.stale(gen) {
		return nil
	}

	o.products = products
	o.view.RenderTable(products, TotalPrice(products))
	o.view.RenderProductCount(len(products))
	return nil
}

// fail is the terminal failure handler every pipeline funnels into:
// log, put the loading indicator away and surface a message.
func (o *Orchestrator) fail(pipeline string, scope LoadScope, err error) error {
	o.logger.Errorf("%s: %s", pipeline, err.Error())
	if scope != "" {
		o.view.HideLoading(scope)
	}
	o.view.ShowError(err.Error())
	return err
}

func (o *Orchestrator) firstOrderID() string {
	if len(o.orders) == 0 {
		return ""
	}
	return o.orders[0].ID
}

func (o *Orchestrator) nextGeneration() uint64 {
	o.generation++
	return o.generation
}

func (o *Orchestrator) stale(gen uint64) bool {
	return gen != o.generation
}
