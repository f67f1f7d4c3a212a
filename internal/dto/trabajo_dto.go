package dto

// RegistrarTrabajoRequest takes service NAMES; the service layer resolves them
// against the catalog and snapshots name/category/cost/discount into the
// trabajo, so later catalog edits never touch this record.
type RegistrarTrabajoRequest struct {
	Cliente          string   `json:"cliente"   validate:"required,min=2"`
	Servicios        []string `json:"servicios" validate:"required,min=1"`
	Descripcion      string   `json:"descripcion"`
	Fecha            string   `json:"fecha"`            // YYYY-MM-DD, optional
	FechaVencimiento string   `json:"fechaVencimiento"` // YYYY-MM-DD, optional
	Tecnico          string   `json:"tecnico"   validate:"required,uuid"`
	Observaciones    string   `json:"observaciones"`
	Costo            float64  `json:"costo" validate:"min=0"`
}

type ActualizarTrabajoRequest struct {
	Cliente          *string  `json:"cliente"`
	Servicios        []string `json:"servicios"`
	Descripcion      *string  `json:"descripcion"`
	Fecha            *string  `json:"fecha"`
	FechaVencimiento *string  `json:"fechaVencimiento"`
	Tecnico          *string  `json:"tecnico" validate:"omitempty,uuid"`
	Observaciones    *string  `json:"observaciones"`
}

type TrabajoServicioResponse struct {
	Servicio  string  `json:"servicio"`
	Categoria string  `json:"categoria"`
	Costo     float64 `json:"costo"`
	Descuento float64 `json:"descuento"`
}

type TrabajoResponse struct {
	ID               string                    `json:"_id"`
	Cliente          string                    `json:"cliente"`
	Servicios        []TrabajoServicioResponse `json:"servicios"`
	Descripcion      string                    `json:"descripcion"`
	Fecha            string                    `json:"fecha,omitempty"`
	FechaVencimiento string                    `json:"fechaVencimiento,omitempty"`
	Tecnico          *EmpleadoResponse         `json:"tecnico,omitempty"`
	Observaciones    string                    `json:"observaciones"`
	Costo            float64                   `json:"costo"`
	Active           bool                      `json:"active"`
}
