package dto

type CrearProveedorRequest struct {
	Name      string       `json:"name"  validate:"required,min=2"`
	Lastname  string       `json:"lastname"`
	Email     string       `json:"email" validate:"omitempty,email"`
	Cel       string       `json:"cel"`
	Domicilio DomicilioDTO `json:"domicilio"`
}

type ProveedorResponse struct {
	ID        string       `json:"_id"`
	Name      string       `json:"name"`
	Lastname  string       `json:"lastname"`
	Email     string       `json:"email"`
	Cel       string       `json:"cel"`
	Domicilio DomicilioDTO `json:"domicilio"`
	CreateAt  string       `json:"create_at"`
}
