package client

import (
	"github.com/PrinceMakavana/restaurant-order-management-system/broadcast"
	"github.com/PrinceMakavana/restaurant-order-management-system/models"
)

var fixtureMenu = []models.MenuItem{
	{ID: "1", Name: "Caesar Salad", Price: 12.99, Category: models.CategoryStarters,
		Description: "Crisp romaine lettuce, parmesan, croutons, classic dressing"},
	{ID: "2", Name: "Grilled Salmon", Price: 28.99, Category: models.CategoryMains,
		Description: "Fresh Atlantic salmon with lemon butter sauce"},
	{ID: "3", Name: "Chocolate Lava Cake", Price: 9.99, Category: models.CategoryDesserts,
		Description: "Warm chocolate cake with molten center"},
	{ID: "4", Name: "Craft IPA", Price: 7.99, Category: models.CategoryBeverages,
		Description: "Local brewery special IPA"},
}

// drain applies every message the echo channel has buffered, the way a
// running session would on delivery.
func drain(s *Session, ch *broadcast.EchoChannel) {
	for {
		select {
		case msg, ok := <-ch.Messages():
			if !ok {
				return
			}
			s.Store().Apply(msg)
		default:
			return
		}
	}
}
