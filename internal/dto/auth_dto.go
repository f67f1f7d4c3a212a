package dto

type DomicilioDTO struct {
	Calle        string `json:"calle"`
	Numero       string `json:"numero"`
	Ciudad       string `json:"ciudad"`
	Provincia    string `json:"provincia"`
	CodigoPostal string `json:"codigo_postal"`
}

type RegisterRequest struct {
	Name      string       `json:"name"      validate:"required,min=2"`
	Lastname  string       `json:"lastname"`
	Nickname  string       `json:"nickname"`
	Email     string       `json:"email"     validate:"required,email"`
	Password  string       `json:"password"  validate:"required,min=6"`
	Rol       string       `json:"rol"`
	Image     string       `json:"image"`
	Domicilio DomicilioDTO `json:"domicilio"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	User    struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Rol   string `json:"rol"`
	} `json:"user"`
}

// LoginResponse mirrors what the admin UI consumes: the token plus the
// profile fields it renders in the header.
type LoginResponse struct {
	Token         string       `json:"token"`
	Nombre        string       `json:"nombre"`
	Apellido      string       `json:"apellido"`
	Username      string       `json:"username"`
	Image         string       `json:"image"`
	Rol           string       `json:"rol"`
	Email         string       `json:"email"`
	Domicilio     DomicilioDTO `json:"domicilio"`
	FechaCreacion string       `json:"fecha_creacion"`
	Iat           int64        `json:"iat"`
	Exp           int64        `json:"exp"`
}

type UsuarioResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Lastname  string       `json:"lastname"`
	Nickname  string       `json:"nickname"`
	Email     string       `json:"email"`
	Rol       string       `json:"rol"`
	Image     string       `json:"image"`
	Domicilio DomicilioDTO `json:"domicilio"`
	CreateAt  string       `json:"create_at"`
}
