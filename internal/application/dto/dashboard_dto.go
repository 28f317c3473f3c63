package dto

// DashboardForm formulário de cadastro e edição de dashboard.
type DashboardForm struct {
	Cliente string `form:"cliente"`
	Nome    string `form:"nome"`
	Link    string `form:"link"`
}
