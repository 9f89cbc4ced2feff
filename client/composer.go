package client

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PrinceMakavana/restaurant-order-management-system/models"
)

// Composer accumulates a candidate order for one table before it is sent to
// the kitchen. It is scratch state only: nothing is published or retained
// until Submit, and Submit hands a snapshot to the session so later edits
// cannot reach an already-sent order.
type Composer struct {
	session *Session
	items   []models.OrderItem
}

func NewComposer(session *Session) *Composer {
	return &Composer{session: session}
}

// Add puts one more of the item on the scratch list. A repeated item bumps
// its quantity in place; a new item goes to the end.
func (c *Composer) Add(item models.MenuItem) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, models.OrderItem{MenuItem: item, Quantity: 1})
}

// Remove takes one of the item off the list, deleting the entry when its
// quantity reaches zero. Unknown ids are a no-op.
func (c *Composer) Remove(itemID string) {
	for i := range c.items {
		if c.items[i].ID != itemID {
			continue
		}
		if c.items[i].Quantity > 1 {
			c.items[i].Quantity--
			return
		}
		c.items = append(c.items[:i], c.items[i+1:]...)
		return
	}
}

// Items returns a copy of the scratch list in first-added order.
func (c *Composer) Items() []models.OrderItem {
	out := make([]models.OrderItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the display total, price times quantity over all entries rounded
// to two places. Decimal arithmetic keeps repeated add/remove cycles from
// drifting past display precision.
func (c *Composer) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2)
}

// Submit sends the accumulated items to the kitchen as a pending order and
// clears the scratch list. An empty list is a no-op and publishes nothing.
func (c *Composer) Submit(tableNumber int, waiter string) (models.Order, error) {
	if len(c.items) == 0 {
		return models.Order{}, nil
	}
	order := models.Order{
		ID:          models.NewOrderID(),
		TableNumber: tableNumber,
		Items:       c.Items(),
		Status:      models.StatusPending,
		Timestamp:   time.Now().UnixMilli(),
		Waiter:      waiter,
	}
	if err := c.session.PlaceOrder(order); err != nil {
		return models.Order{}, err
	}
	c.items = nil
	return order, nil
}
