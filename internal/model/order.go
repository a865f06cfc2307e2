package model

// StatusAccepted is the only status the backend treats as on time. The
// leading space is present in the stored data and must be preserved on
// the wire.
const StatusAccepted = " Accepted"

type Order struct {
	ID           string       `json:"id"`
	Summary      OrderSummary `json:"summary"`
	ShipTo       Address      `json:"shipTo"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
}

// OrderSummary is what the sidebar shows per order. Dates stay in the
// server-side D.M.Y form; formatting for display happens in the view layer.
type OrderSummary struct {
	CreatedAt string `json:"createdAt"`
	Customer  string `json:"customer"`
	Status    string `json:"status"`
	ShippedAt string `json:"shippedAt"`
}

// Address keys are fixed and positional: name, address, ZIP, region, country.
// Form extraction and re-population rely on this order.
type Address struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	ZIP     string `json:"ZIP"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// AddressKeys is the fixed key order for shipping-address forms.
var AddressKeys = [5]string{"name", "address", "ZIP", "region", "country"}

// Values returns the address fields in the fixed key order.
func (a Address) Values() [5]string {
	return [5]string{a.Name, a.Address, a.ZIP, a.Region, a.Country}
}

// AddressFromValues builds an Address from values given in the fixed key order.
func AddressFromValues(v [5]string) Address {
	return Address{Name: v[0], Address: v[1], ZIP: v[2], Region: v[3], Country: v[4]}
}

type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// OrderInput is the POST /api/Orders payload: an order without an id.
// The backend assigns identity.
type OrderInput struct {
	Summary      OrderSummary `json:"summary"`
	ShipTo       Address      `json:"shipTo"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
}

// ShipToUpdate is the PUT /api/Orders/{ORDER} body.
type ShipToUpdate struct {
	ShipTo Address `json:"shipTo"`
}
