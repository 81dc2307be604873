package models

import "time"

type Order struct {
	ID        int         `json:"id"`
	UserID    int         `json:"user_id"`
	Total     float64     `json:"total"`
	Notes     string      `json:"notas"`
	Items     []OrderItem `json:"items,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID          int     `json:"id"`
	OrderID     int     `json:"order_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"nombre,omitempty"`
	Quantity    float64 `json:"cantidad"`
	Unit        string  `json:"unidad"`
	Size        string  `json:"tamanio"`
	Option      string  `json:"opcion"`
	UnitPrice   float64 `json:"precio_unit"`
}

// OrderSummary is one row of the admin dashboard: the order header joined
// to its owning customer.
type OrderSummary struct {
	ID            int       `json:"id"`
	Total         float64   `json:"total"`
	Notes         string    `json:"notas"`
	CustomerName  string    `json:"cliente"`
	CustomerEmail string    `json:"email"`
	CustomerPhone string    `json:"telefono"`
	Address       string    `json:"direccion"`
	CreatedAt     time.Time `json:"created_at"`
}
