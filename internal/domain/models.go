package domain

import "time"

// CartLine is one menu item in a guest's cart. At most one line exists per
// item id; quantity never drops below 1 (a line collapsing to 0 is removed).
type CartLine struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type InventoryItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	CurrentStock int    `json:"currentStock"`
	MinStock     int    `json:"minStock"`
	MaxStock     int    `json:"maxStock"`
	Unit         string `json:"unit"`
}

// StockReason classifies a stock adjustment.
type StockReason string

const (
	ReasonDelivery   StockReason = "delivery"
	ReasonUsage      StockReason = "usage"
	ReasonWaste      StockReason = "waste"
	ReasonAdjustment StockReason = "adjustment"
)

// StockEntry is an append-only audit record of one stock adjustment. Change is
// the requested delta, which may exceed what clamping let through; history is
// never replayed to recompute stock.
type StockEntry struct {
	ItemID    string      `json:"itemId"`
	Change    int         `json:"change"`
	Reason    StockReason `json:"reason"`
	Notes     string      `json:"notes"`
	Timestamp time.Time   `json:"timestamp"`
	User      string      `json:"user"`
}

type PurchaseOrderLine struct {
	ItemID        string `json:"itemId"`
	Name          string `json:"name"`
	CurrentStock  int    `json:"currentStock"`
	MinStock      int    `json:"minStock"`
	OrderQuantity int    `json:"orderQuantity"`
	Unit          string `json:"unit"`
}

// PurchaseOrder is an on-demand snapshot of the low-stock subset. Receiving it
// is a separate manual stock adjustment; nothing links back automatically.
type PurchaseOrder struct {
	ID        string              `json:"id"`
	Items     []PurchaseOrderLine `json:"items"`
	Timestamp time.Time           `json:"timestamp"`
	Status    Status              `json:"status"`
}

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}

type RoomStatus string

const (
	RoomOccupied    RoomStatus = "occupied"
	RoomVacant      RoomStatus = "vacant"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

type Room struct {
	Number string     `json:"number"`
	Status RoomStatus `json:"status"`
	Type   string     `json:"type"`
}

type Guest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Room string `json:"room,omitempty"`
}
