package domain

import "time"

// OrderKind tags the two order variants. Food orders carry line items and a
// frozen total; service orders carry the requested service.
type OrderKind string

const (
	KindFood    OrderKind = "food"
	KindService OrderKind = "service"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusPreparing  Status = "preparing"
	StatusReady      Status = "ready"
	StatusDelivered  Status = "delivered"
	StatusProcessing Status = "processing"
)

type ServiceKind string

const (
	ServiceHousekeeping   ServiceKind = "housekeeping"
	ServiceLaundry        ServiceKind = "laundry"
	ServiceTransportation ServiceKind = "transportation"
	ServiceSpa            ServiceKind = "spa"
)

// ServiceNames maps a service kind to its guest-facing name.
var ServiceNames = map[ServiceKind]string{
	ServiceHousekeeping:   "Housekeeping Service",
	ServiceLaundry:        "Laundry Service",
	ServiceTransportation: "Transportation Service",
	ServiceSpa:            "Spa Booking",
}

// Order is a tagged union over food and service orders. Only Status mutates
// after creation; everything else is a frozen snapshot.
type Order struct {
	ID        string    `json:"id"`
	Kind      OrderKind `json:"type"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`

	// food only
	Items []CartLine `json:"items,omitempty"`
	Total float64    `json:"total,omitempty"`

	// service only
	Service ServiceKind `json:"service,omitempty"`
	Name    string      `json:"name,omitempty"`
}

// transitions is the per-kind forward step table. Anything not listed is an
// illegal transition; terminal statuses have no entry.
var transitions = map[OrderKind]map[Status]Status{
	KindFood: {
		StatusPending:   StatusPreparing,
		StatusPreparing: StatusReady,
		StatusReady:     StatusDelivered,
	},
	KindService: {
		StatusPending: StatusProcessing,
	},
}

// CanTransition reports whether an order of kind k may move from one status to
// another. Staff advance orders one step at a time.
func CanTransition(k OrderKind, from, to Status) bool {
	next, ok := transitions[k][from]
	return ok && next == to
}

// NextStatus returns the single legal forward step, or false at a terminal
// status.
func NextStatus(k OrderKind, from Status) (Status, bool) {
	next, ok := transitions[k][from]
	return next, ok
}

// Next is NextStatus for templates; it returns "" at a terminal status.
func (o Order) Next() Status {
	next, ok := NextStatus(o.Kind, o.Status)
	if !ok {
		return ""
	}
	return next
}
