package dto

// LoginRequest formulário de login.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// TrocaSenhaRequest formulário da troca obrigatória de senha do primeiro login.
type TrocaSenhaRequest struct {
	NovaSenha     string `form:"new_password"`
	ConfirmaSenha string `form:"confirm_password"`
}
