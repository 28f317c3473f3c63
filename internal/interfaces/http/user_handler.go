package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tahto/portal-bi/internal/application/dto"
	"github.com/tahto/portal-bi/internal/application/usecase"
	"github.com/tahto/portal-bi/internal/domain"
)

// UserHandler telas de cadastro e gestão de usuários.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler constrói o handler de usuários.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// RegisterForm renderiza o formulário de cadastro com o select de tipos.
func (h *UserHandler) RegisterForm(c *fiber.Ctx) error {
	tipos, err := h.uc.TiposSelecionaveis()
	if err != nil {
		return err
	}
	return render(c, "register", fiber.Map{"tipos": tipos})
}

// Register cria o usuário com a senha padrão e informa essa senha no flash,
// para o administrador repassar por fora do sistema.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		setFlash(c, "danger", "Requisição inválida.")
		return c.Redirect("/register", fiber.StatusSeeOther)
	}
	senha, err := h.uc.Criar(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTipoInvalido):
			setFlash(c, "danger", "Tipo de usuário inválido.")
		case errors.Is(err, domain.ErrValidacao):
			setFlash(c, "warning", "Preencha todos os campos.")
		case errors.Is(err, domain.ErrDuplicado):
			setFlash(c, "danger", "Usuário já existe.")
		default:
			return err
		}
		return c.Redirect("/register", fiber.StatusSeeOther)
	}
	setFlash(c, "success", "Usuário cadastrado com sucesso! Senha padrão: "+senha)
	return c.Redirect("/homepage", fiber.StatusSeeOther)
}

// Gestao lista os usuários (exceto admin) e os tipos para o select.
func (h *UserHandler) Gestao(c *fiber.Ctx) error {
	usuarios, err := h.uc.ListarSemAdmin()
	if err != nil {
		return err
	}
	tipos, err := h.uc.Tipos()
	if err != nil {
		return err
	}
	return render(c, "gestao_usuarios", fiber.Map{
		"usuarios": usuarios,
		"tipos":    tipos,
	})
}

// AlterarTipo troca o tipo de um usuário.
func (h *UserHandler) AlterarTipo(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil {
		setFlash(c, "danger", "Identificador inválido.")
		return c.Redirect("/gestao_usuarios", fiber.StatusSeeOther)
	}
	novoTipo, err := strconv.Atoi(c.FormValue("novo_tipo"))
	if err != nil {
		setFlash(c, "danger", "Tipo de usuário inválido.")
		return c.Redirect("/gestao_usuarios", fiber.StatusSeeOther)
	}
	if err := h.uc.AlterarTipo(int64(userID), novoTipo); err != nil {
		if errors.Is(err, domain.ErrTipoInvalido) {
			setFlash(c, "danger", "Tipo de usuário inválido.")
			return c.Redirect("/gestao_usuarios", fiber.StatusSeeOther)
		}
		return err
	}
	setFlash(c, "success", "Tipo do usuário atualizado com sucesso!")
	return c.Redirect("/gestao_usuarios", fiber.StatusSeeOther)
}

// Excluir remove um usuário; id inexistente também conta como sucesso.
func (h *UserHandler) Excluir(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil {
		setFlash(c, "danger", "Identificador inválido.")
		return c.Redirect("/gestao_usuarios", fiber.StatusSeeOther)
	}
	if err := h.uc.Excluir(int64(userID)); err != nil {
		return err
	}
	setFlash(c, "success", "Usuário excluído com sucesso!")
	return c.Redirect("/gestao_usuarios", fiber.StatusSeeOther)
}

// ResetarSenha volta a senha do usuário para a padrão e rearma o gate do
// primeiro login.
func (h *UserHandler) ResetarSenha(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil {
		setFlash(c, "danger", "Identificador inválido.")
		return c.Redirect("/gestao_usuarios", fiber.StatusSeeOther)
	}
	if err := h.uc.ResetarSenha(int64(userID)); err != nil {
		return err
	}
	setFlash(c, "success", "Senha resetada com sucesso!")
	return c.Redirect("/gestao_usuarios", fiber.StatusSeeOther)
}
