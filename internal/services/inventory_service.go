package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"harborview/internal/domain"
	"harborview/internal/store"
)

// InventoryService owns the stock ledger, its audit history and purchase
// order generation.
type InventoryService struct {
	Store *store.Store
	Notes *NotificationService
}

func NewInventoryService(st *store.Store, notes *NotificationService) *InventoryService {
	return &InventoryService{Store: st, Notes: notes}
}

func (s *InventoryService) loadLedger() ([]domain.InventoryItem, error) {
	items := []domain.InventoryItem{}
	if _, err := s.Store.Get(store.KeyInventory, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *InventoryService) List() ([]domain.InventoryItem, error) {
	return s.loadLedger()
}

// ItemSpec describes a new inventory item. MaxStock defaults to three times
// the initial stock when left zero.
type ItemSpec struct {
	Name         string
	Category     string
	CurrentStock int
	MinStock     int
	MaxStock     int
	Unit         string
}

// AddItem appends a new item to the ledger with a fresh id.
func (s *InventoryService) AddItem(spec ItemSpec) (domain.InventoryItem, error) {
	item := domain.InventoryItem{
		ID:           "INV-" + uuid.NewString(),
		Name:         spec.Name,
		Category:     spec.Category,
		CurrentStock: spec.CurrentStock,
		MinStock:     spec.MinStock,
		MaxStock:     spec.MaxStock,
		Unit:         spec.Unit,
	}
	if item.MaxStock <= 0 {
		item.MaxStock = spec.CurrentStock * 3
	}
	err := s.Store.Update(func() error {
		items, err := s.loadLedger()
		if err != nil {
			return err
		}
		items = append(items, item)
		return s.Store.Put(store.KeyInventory, items)
	})
	if err != nil {
		return domain.InventoryItem{}, err
	}
	return item, nil
}

// AdjustStock applies delta to an item's stock, clamped into [0, maxStock],
// and appends one history entry per call. The entry records the requested
// delta even when clamping reduced the applied effect; history is log-only
// and never replayed. Unknown ids are reported.
func (s *InventoryService) AdjustStock(itemID string, delta int, reason domain.StockReason, notes, actor string) (domain.InventoryItem, error) {
	var updated domain.InventoryItem
	lowStock := false
	err := s.Store.Update(func() error {
		items, err := s.loadLedger()
		if err != nil {
			return err
		}
		for i := range items {
			if items[i].ID != itemID {
				continue
			}
			items[i].CurrentStock += delta
			if items[i].CurrentStock < 0 {
				items[i].CurrentStock = 0
			}
			if items[i].CurrentStock > items[i].MaxStock {
				items[i].CurrentStock = items[i].MaxStock
			}
			if err := s.Store.Put(store.KeyInventory, items); err != nil {
				return err
			}
			updated = items[i]
			lowStock = items[i].CurrentStock < items[i].MinStock
			return s.appendHistory(domain.StockEntry{
				ItemID:    itemID,
				Change:    delta,
				Reason:    reason,
				Notes:     notes,
				Timestamp: time.Now().UTC(),
				User:      actor,
			})
		}
		return fmt.Errorf("%w: inventory item %s", ErrNotFound, itemID)
	})
	if err != nil {
		return domain.InventoryItem{}, err
	}
	if lowStock {
		s.Notes.Add("Low Stock", fmt.Sprintf("%s is below minimum stock (%d %s left)", updated.Name, updated.CurrentStock, updated.Unit), "warning")
	}
	return updated, nil
}

func (s *InventoryService) appendHistory(e domain.StockEntry) error {
	history := []domain.StockEntry{}
	if _, err := s.Store.Get(store.KeyStockHistory, &history); err != nil {
		return err
	}
	history = append([]domain.StockEntry{e}, history...)
	return s.Store.Put(store.KeyStockHistory, history)
}

// History returns the audit log, most recent first. An empty itemID returns
// everything.
func (s *InventoryService) History(itemID string) ([]domain.StockEntry, error) {
	history := []domain.StockEntry{}
	if _, err := s.Store.Get(store.KeyStockHistory, &history); err != nil {
		return nil, err
	}
	if itemID == "" {
		return history, nil
	}
	out := []domain.StockEntry{}
	for _, e := range history {
		if e.ItemID == itemID {
			out = append(out, e)
		}
	}
	return out, nil
}

// LowStock returns items whose stock fell below their reorder threshold, in
// ledger order.
func (s *InventoryService) LowStock() ([]domain.InventoryItem, error) {
	items, err := s.loadLedger()
	if err != nil {
		return nil, err
	}
	low := []domain.InventoryItem{}
	for _, it := range items {
		if it.CurrentStock < it.MinStock {
			low = append(low, it)
		}
	}
	return low, nil
}

// GeneratePurchaseOrder snapshots the low-stock subset into a new purchase
// order. A nil order with a nil error means nothing is below threshold; that
// is informational, not a failure. Receiving the order later is a manual
// stock adjustment.
func (s *InventoryService) GeneratePurchaseOrder() (*domain.PurchaseOrder, error) {
	low, err := s.LowStock()
	if err != nil {
		return nil, err
	}
	if len(low) == 0 {
		return nil, nil
	}
	po := domain.PurchaseOrder{
		ID:        "PO-" + uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Status:    domain.StatusPending,
	}
	for _, it := range low {
		po.Items = append(po.Items, domain.PurchaseOrderLine{
			ItemID:        it.ID,
			Name:          it.Name,
			CurrentStock:  it.CurrentStock,
			MinStock:      it.MinStock,
			OrderQuantity: 2*it.MinStock - it.CurrentStock,
			Unit:          it.Unit,
		})
	}
	err = s.Store.Update(func() error {
		pos := []domain.PurchaseOrder{}
		if _, err := s.Store.Get(store.KeyPurchaseOrders, &pos); err != nil {
			return err
		}
		pos = append([]domain.PurchaseOrder{po}, pos...)
		return s.Store.Put(store.KeyPurchaseOrders, pos)
	})
	if err != nil {
		return nil, err
	}
	s.Notes.Add("Purchase Order", fmt.Sprintf("Purchase order %s generated with %d items", po.ID, len(po.Items)), "info")
	return &po, nil
}

// PurchaseOrders lists generated purchase orders, most recent first.
func (s *InventoryService) PurchaseOrders() ([]domain.PurchaseOrder, error) {
	pos := []domain.PurchaseOrder{}
	if _, err := s.Store.Get(store.KeyPurchaseOrders, &pos); err != nil {
		return nil, err
	}
	return pos, nil
}
