package dto

type CrearMedidaRequest struct {
	Name         string `json:"name" validate:"required,min=1"`
	Abbreviation string `json:"abbreviation"`
}

type MedidaResponse struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	IsActive     bool   `json:"isActive"`
}

type CrearCategoriaRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type CategoriaResponse struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}
