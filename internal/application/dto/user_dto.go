package dto

// CreateUserRequest formulário de cadastro de usuário. A senha não vem do
// formulário: todo usuário nasce com a senha padrão definida no use case.
type CreateUserRequest struct {
	Username string `form:"username"`
	Tipo     string `form:"tipo"` // valor do select, validado no use case
}

// UserListItem linha do listado de gestão de usuários.
type UserListItem struct {
	ID         int64
	Username   string
	Tipo       int
	Classe     string
	JaFezLogin string // "Sim" / "Não", exibido direto na view
}

// RoleOption opção do select de tipos de usuário.
type RoleOption struct {
	Tipo   int
	Classe string
}
