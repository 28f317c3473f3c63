package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tahto/portal-bi/internal/application/dto"
	"github.com/tahto/portal-bi/internal/application/usecase"
	"github.com/tahto/portal-bi/internal/domain"
	"github.com/tahto/portal-bi/internal/domain/entity"
)

// DashboardHandler telas de dashboards: homepage por perfil, listagem
// agrupada, cadastro e gestão.
type DashboardHandler struct {
	uc         *usecase.DashboardUseCase
	powerBIURL string
}

// NewDashboardHandler constrói o handler de dashboards.
func NewDashboardHandler(uc *usecase.DashboardUseCase, powerBIURL string) *DashboardHandler {
	return &DashboardHandler{uc: uc, powerBIURL: powerBIURL}
}

// Homepage renderiza a landing do perfil do usuário com os dashboards que o
// perfil enxerga.
func (h *DashboardHandler) Homepage(c *fiber.Ctx) error {
	user := CurrentUser(c)
	perfil := entity.PerfilDoTipo(user.Tipo)
	dashboards, err := h.uc.ListarParaPerfil(perfil)
	if err != nil {
		return err
	}
	return render(c, perfil.Landing, fiber.Map{
		"dashboards":  dashboards,
		"powerbi_url": h.powerBIURL,
	})
}

// Dashboard renderiza a lista completa agrupada por cliente.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	clientes, dashboards, err := h.uc.ListarAgrupado()
	if err != nil {
		return err
	}
	return render(c, "dashboard", fiber.Map{
		"clientes":   clientes,
		"dashboards": dashboards,
	})
}

// RegisterForm renderiza o formulário de cadastro de dashboard.
func (h *DashboardHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register_dashboard", fiber.Map{})
}

// Register cadastra um dashboard.
func (h *DashboardHandler) Register(c *fiber.Ctx) error {
	var in dto.DashboardForm
	if err := c.BodyParser(&in); err != nil {
		setFlash(c, "danger", "Requisição inválida.")
		return c.Redirect("/register_dashboard", fiber.StatusSeeOther)
	}
	if _, err := h.uc.Criar(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicado):
			setFlash(c, "danger", "Já existe um dashboard com esse nome.")
		case errors.Is(err, domain.ErrValidacao):
			setFlash(c, "warning", "Todos os campos são obrigatórios.")
		default:
			return err
		}
		return c.Redirect("/register_dashboard", fiber.StatusSeeOther)
	}
	setFlash(c, "success", "Dashboard cadastrado com sucesso!")
	return c.Redirect("/register_dashboard", fiber.StatusSeeOther)
}

// Gestao lista todos os dashboards para administração.
func (h *DashboardHandler) Gestao(c *fiber.Ctx) error {
	dashboards, err := h.uc.Listar("")
	if err != nil {
		return err
	}
	return render(c, "gestao_dashboards", fiber.Map{"dashboards": dashboards})
}

// Excluir remove um dashboard; excluir id inexistente também conta como
// sucesso.
func (h *DashboardHandler) Excluir(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		setFlash(c, "danger", "Identificador inválido.")
		return c.Redirect("/gestao_dashboards", fiber.StatusSeeOther)
	}
	if err := h.uc.Excluir(int64(id)); err != nil {
		return err
	}
	setFlash(c, "success", "Dashboard excluído com sucesso!")
	return c.Redirect("/gestao_dashboards", fiber.StatusSeeOther)
}

// EditarForm renderiza o formulário de edição com os dados atuais.
func (h *DashboardHandler) EditarForm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		setFlash(c, "danger", "Identificador inválido.")
		return c.Redirect("/gestao_dashboards", fiber.StatusSeeOther)
	}
	d, err := h.uc.BuscarPorID(int64(id))
	if err != nil {
		return err
	}
	if d == nil {
		setFlash(c, "danger", "Dashboard não encontrado.")
		return c.Redirect("/gestao_dashboards", fiber.StatusSeeOther)
	}
	return render(c, "editar_dashboard", fiber.Map{"dashboard": d})
}

// Editar aplica a edição de um dashboard.
func (h *DashboardHandler) Editar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		setFlash(c, "danger", "Identificador inválido.")
		return c.Redirect("/gestao_dashboards", fiber.StatusSeeOther)
	}
	var in dto.DashboardForm
	if err := c.BodyParser(&in); err != nil {
		setFlash(c, "danger", "Requisição inválida.")
		return c.Redirect("/gestao_dashboards", fiber.StatusSeeOther)
	}
	if err := h.uc.Atualizar(int64(id), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNaoEncontrado):
			setFlash(c, "danger", "Dashboard não encontrado.")
		case errors.Is(err, domain.ErrDuplicado):
			setFlash(c, "danger", "Já existe um dashboard com esse nome.")
		default:
			return err
		}
		return c.Redirect("/gestao_dashboards", fiber.StatusSeeOther)
	}
	setFlash(c, "success", "Dashboard atualizado com sucesso!")
	return c.Redirect("/gestao_dashboards", fiber.StatusSeeOther)
}
