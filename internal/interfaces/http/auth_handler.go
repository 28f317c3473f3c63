package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tahto/portal-bi/internal/application/auth"
	"github.com/tahto/portal-bi/internal/application/dto"
	"github.com/tahto/portal-bi/internal/domain"
)

// AuthHandler rotas de autenticação e do primeiro login.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	expMinutes int
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, expMinutes int) *AuthHandler {
	return &AuthHandler{uc: uc, expMinutes: expMinutes}
}

// Index redireciona para a homepage ou para o login.
func (h *AuthHandler) Index(c *fiber.Ctx) error {
	if CurrentUser(c) != nil {
		return c.Redirect("/homepage", fiber.StatusSeeOther)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// LoginForm renderiza a tela de login.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{})
}

// Login autentica e abre a sessão. Primeiro login pendente vai direto para a
// troca de senha.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		setFlash(c, "danger", "Requisição inválida.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	user, tok, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrCredenciaisInvalidas) {
			setFlash(c, "danger", "Usuário ou senha inválidos.")
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return err
	}
	SetSessionCookie(c, tok, h.expMinutes)
	if user.FirstLogin {
		return c.Redirect("/primeira_troca_senha", fiber.StatusSeeOther)
	}
	return c.Redirect("/homepage", fiber.StatusSeeOther)
}

// Logout encerra a sessão incondicionalmente.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ClearSessionCookie(c)
	setFlash(c, "info", "Você saiu da sua conta.")
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// TrocaSenhaForm renderiza a tela da troca obrigatória de senha.
func (h *AuthHandler) TrocaSenhaForm(c *fiber.Ctx) error {
	return render(c, "primeira_troca_senha", fiber.Map{})
}

// TrocaSenha aplica a troca de senha do primeiro login.
func (h *AuthHandler) TrocaSenha(c *fiber.Ctx) error {
	user := CurrentUser(c)
	var in dto.TrocaSenhaRequest
	if err := c.BodyParser(&in); err != nil {
		setFlash(c, "danger", "Requisição inválida.")
		return c.Redirect("/primeira_troca_senha", fiber.StatusSeeOther)
	}
	if err := h.uc.TrocarSenhaPrimeiroLogin(user.ID, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrSenhasNaoCoincidem):
			setFlash(c, "danger", "As senhas não coincidem.")
		case errors.Is(err, domain.ErrValidacao):
			setFlash(c, "warning", "Preencha todos os campos.")
		default:
			return err
		}
		return c.Redirect("/primeira_troca_senha", fiber.StatusSeeOther)
	}
	setFlash(c, "success", "Senha alterada com sucesso!")
	return c.Redirect("/homepage", fiber.StatusSeeOther)
}
