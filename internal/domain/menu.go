package domain

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}

// menuItems is the fixed room-service menu.
var menuItems = []MenuItem{
	{ID: 1, Name: "Classic Burger", Description: "Juicy beef patty with fresh vegetables and special sauce", Price: 16.99, Category: "main-course", Available: true},
	{ID: 2, Name: "Caesar Salad", Description: "Fresh romaine lettuce with Caesar dressing and croutons", Price: 12.99, Category: "appetizers", Available: true},
	{ID: 3, Name: "Chocolate Lava Cake", Description: "Warm chocolate cake with molten center and vanilla ice cream", Price: 8.99, Category: "desserts", Available: true},
	{ID: 4, Name: "Fresh Orange Juice", Description: "Freshly squeezed orange juice", Price: 5.99, Category: "beverages", Available: true},
	{ID: 5, Name: "Grilled Salmon", Description: "Atlantic salmon with lemon butter sauce and vegetables", Price: 24.99, Category: "main-course", Available: true},
	{ID: 6, Name: "Mozzarella Sticks", Description: "Breaded mozzarella cheese sticks with marinara sauce", Price: 9.99, Category: "appetizers", Available: true},
}

// Menu returns the catalog, optionally filtered by category ("all" or empty
// means no filter).
func Menu(category string) []MenuItem {
	if category == "" || category == "all" {
		out := make([]MenuItem, len(menuItems))
		copy(out, menuItems)
		return out
	}
	var out []MenuItem
	for _, m := range menuItems {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// MenuItemByID looks up a menu item.
func MenuItemByID(id int) (MenuItem, bool) {
	for _, m := range menuItems {
		if m.ID == id {
			return m, true
		}
	}
	return MenuItem{}, false
}
