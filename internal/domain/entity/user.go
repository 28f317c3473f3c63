package entity

// User representa um usuário do portal.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // hash bcrypt, nunca a senha em claro depois de persistir
	Tipo         int
	FirstLogin   bool
}

// UserComRole é a linha do listado de gestão: usuário anotado com o rótulo
// do seu tipo e com o indicador de já ter feito login.
type UserComRole struct {
	User
	Classe     string
	JaFezLogin bool
}
