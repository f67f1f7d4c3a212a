package dto

type CrearServicioRequest struct {
	Servicio    string  `json:"servicio"    validate:"required,min=2"`
	Descripcion string  `json:"descripcion" validate:"required"`
	Categoria   string  `json:"categoria"   validate:"required"`
	Costo       float64 `json:"costo"       validate:"min=0"`
	Descuento   float64 `json:"descuento"   validate:"min=0,max=100"`
}

type ActualizarServicioRequest struct {
	Servicio    *string  `json:"servicio"    validate:"omitempty,min=2"`
	Descripcion *string  `json:"descripcion"`
	Categoria   *string  `json:"categoria"`
	Costo       *float64 `json:"costo"       validate:"omitempty,min=0"`
	Descuento   *float64 `json:"descuento"   validate:"omitempty,min=0,max=100"`
}

type ServicioResponse struct {
	ID          string  `json:"_id"`
	Servicio    string  `json:"servicio"`
	Descripcion string  `json:"descripcion"`
	Categoria   string  `json:"categoria"`
	Costo       float64 `json:"costo"`
	Descuento   float64 `json:"descuento"`
}

type CrearCategoriaServicioRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1"`
}

type CategoriaServicioResponse struct {
	ID     string `json:"_id"`
	Nombre string `json:"nombre"`
}
