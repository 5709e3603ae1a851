package types

import "errors"

// Inventory validation errors.
var (
	ErrItemNameEmpty  = errors.New("item name must not be empty")
	ErrQtyNotPositive = errors.New("quantity must be a positive integer")
)

// Item is one inventory entry: a name and its stocked quantity.
type Item struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Inventory is an insertion-ordered mapping from item name to a strictly
// positive quantity. Every stored quantity is > 0; a removal that drives a
// quantity to zero or below deletes the entry entirely. Iteration order is
// the order in which items were first added, and the order is preserved
// across save/load round trips.
//
// Inventory is not safe for concurrent use. A session owns exactly one
// Inventory and lends it to mutation methods by pointer.
type Inventory struct {
	qty   map[string]int
	order []string
}

// NewInventory returns an empty Inventory.
func NewInventory() *Inventory {
	return &Inventory{qty: make(map[string]int)}
}

// Add increases the stocked quantity of item by qty, creating the entry if
// absent. Returns ErrItemNameEmpty or ErrQtyNotPositive on invalid input,
// in which case the inventory is left unchanged.
func (inv *Inventory) Add(item string, qty int) error {
	if item == "" {
		return ErrItemNameEmpty
	}
	if qty <= 0 {
		return ErrQtyNotPositive
	}
	if _, ok := inv.qty[item]; !ok {
		inv.order = append(inv.order, item)
	}
	inv.qty[item] += qty
	return nil
}

// Remove decreases the stocked quantity of item by qty. If the result is
// zero or below, the entry is deleted. A missing item is a silent no-op,
// not an error. Returns ErrItemNameEmpty or ErrQtyNotPositive on invalid
// input, in which case the inventory is left unchanged.
func (inv *Inventory) Remove(item string, qty int) error {
	if item == "" {
		return ErrItemNameEmpty
	}
	if qty <= 0 {
		return ErrQtyNotPositive
	}
	current, ok := inv.qty[item]
	if !ok {
		return nil
	}
	remaining := current - qty
	if remaining <= 0 {
		inv.delete(item)
		return nil
	}
	inv.qty[item] = remaining
	return nil
}

// Qty returns the stocked quantity of item, or 0 if absent. Never fails.
func (inv *Inventory) Qty(item string) int {
	return inv.qty[item]
}

// Has reports whether item has an entry in the inventory.
func (inv *Inventory) Has(item string) bool {
	_, ok := inv.qty[item]
	return ok
}

// LowStock returns the names of all items whose quantity is strictly below
// threshold, in insertion order. An empty inventory yields an empty slice.
func (inv *Inventory) LowStock(threshold int) []string {
	low := []string{}
	for _, name := range inv.order {
		if inv.qty[name] < threshold {
			low = append(low, name)
		}
	}
	return low
}

// Items returns a snapshot of all entries in insertion order.
func (inv *Inventory) Items() []Item {
	items := make([]Item, 0, len(inv.order))
	for _, name := range inv.order {
		items = append(items, Item{Name: name, Qty: inv.qty[name]})
	}
	return items
}

// Len returns the number of distinct items.
func (inv *Inventory) Len() int {
	return len(inv.order)
}

// Equal reports whether two inventories hold the same items with the same
// quantities in the same order.
func (inv *Inventory) Equal(other *Inventory) bool {
	if inv.Len() != other.Len() {
		return false
	}
	for i, name := range inv.order {
		if other.order[i] != name || other.qty[name] != inv.qty[name] {
			return false
		}
	}
	return true
}

func (inv *Inventory) delete(item string) {
	delete(inv.qty, item)
	for i, name := range inv.order {
		if name == item {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			return
		}
	}
}
