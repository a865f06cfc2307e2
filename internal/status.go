package internal

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ordersdesk/orderboard/internal/model"
)

// StatusDisplay is the display policy for one order status value.
type StatusDisplay struct {
	Label  string
	Urgent bool
}

// statusDisplays is the closed mapping from backend status values to
// display policy. Keys are matched after trimming because the stored
// accepted sentinel carries a leading space.
var statusDisplays = map[string]StatusDisplay{
	strings.TrimSpace(model.StatusAccepted): {Label: "In time", Urgent: false},
}

var statusUrgent = StatusDisplay{Label: "Urgent", Urgent: true}

// DisplayStatus maps a backend status value onto its display policy.
// Any value outside the mapping is treated as urgent.
func DisplayStatus(status string) StatusDisplay {
	if d, ok := statusDisplays[strings.TrimSpace(status)]; ok {
		return d
	}
	return statusUrgent
}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FormatDate turns a server-side D.M.Y date string into the display
// form "2 Jan. 2019". Malformed input is returned unchanged.
func FormatDate(date string) string {
	parts := strings.Split(date, ".")
	if len(parts) != 3 {
		return date
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return date
	}

	return parts[0] + " " + monthNames[month-1] + ". " + parts[2]
}

const staticMapEndpoint = "https://maps.googleapis.com/maps/api/staticmap"

// StaticMapURL builds the third-party static-map image URL for a
// shipping address.
func StaticMapURL(shipTo model.Address, apiKey string) string {
	q := url.Values{}
	q.Set("center", shipTo.Address)
	q.Set("size", "300x200")
	q.Set("key", apiKey)
	return staticMapEndpoint + "?" + q.Encode()
}
