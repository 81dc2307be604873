package models

import "time"

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"nombre"`
	Category    string    `json:"categoria"`
	Price       float64   `json:"precio"`
	Stock       float64   `json:"stock"`
	Unit        string    `json:"unidad"`
	Sizes       string    `json:"tamanos"`
	Options     string    `json:"opciones"`
	Description string    `json:"descripcion"`
	Image       string    `json:"imagen"`
	CreatedAt   time.Time `json:"created_at"`
}
