package models

import "sort"

// CartLine is one cart entry priced against the current catalog.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity float64 `json:"cantidad"`
	Unit     string  `json:"unidad"`
	Size     string  `json:"tamanio"`
	Option   string  `json:"opcion"`
	Subtotal float64 `json:"subtotal"`
}

// PriceCart prices every cart entry against the products passed in,
// which must be the catalog rows as read right now — carts never cache
// a price. Entries whose product no longer exists are dropped from the
// result and their ids reported so callers can warn the user.
// Lines come back ordered by product id so output is stable.
func PriceCart(cart Cart, products map[int]Product) (lines []CartLine, total float64, dropped []int) {
	ids := make([]int, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		entry := cart[id]
		product, ok := products[id]
		if !ok {
			dropped = append(dropped, id)
			continue
		}

		subtotal := entry.Quantity * product.Price
		total += subtotal
		lines = append(lines, CartLine{
			Product:  product,
			Quantity: entry.Quantity,
			Unit:     entry.Unit,
			Size:     entry.Size,
			Option:   entry.Option,
			Subtotal: subtotal,
		})
	}
	return lines, total, dropped
}
