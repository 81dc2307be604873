package models

type RegisterRequest struct {
	Name     string `json:"nombre" form:"nombre" binding:"required"`
	Surname  string `json:"apellidos" form:"apellidos"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Phone    string `json:"telefono" form:"telefono"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Address string `json:"direccion" form:"direccion" binding:"max=500"`
	Phone   string `json:"telefono" form:"telefono" binding:"max=20"`
}

type CartAddRequest struct {
	ProductID int     `json:"product_id" form:"product_id" binding:"required"`
	Quantity  float64 `json:"cantidad" form:"cantidad"`
	Unit      string  `json:"unidad" form:"unidad"`
	Size      string  `json:"tamanio" form:"tamanio"`
	Option    string  `json:"opcion" form:"opcion"`
}

type CheckoutRequest struct {
	Notes string `json:"notas" form:"notas"`
}

type CreateProductRequest struct {
	Name        string  `json:"nombre" form:"nombre" binding:"required"`
	Category    string  `json:"categoria" form:"categoria" binding:"required"`
	Price       float64 `json:"precio" form:"precio"`
	Stock       float64 `json:"stock" form:"stock"`
	Unit        string  `json:"unidad" form:"unidad"`
	Sizes       string  `json:"tamanos" form:"tamanos"`
	Options     string  `json:"opciones" form:"opciones"`
	Description string  `json:"descripcion" form:"descripcion"`
	Image       string  `json:"imagen" form:"imagen"`
}
