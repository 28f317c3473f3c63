package usecase

import (
	"strings"

	"github.com/tahto/portal-bi/internal/application/dto"
	"github.com/tahto/portal-bi/internal/domain"
	"github.com/tahto/portal-bi/internal/domain/entity"
	"github.com/tahto/portal-bi/internal/domain/repository"
)

// DashboardUseCase aplica as regras de negócio do diretório de dashboards.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase constrói o caso de uso com o porto de persistência.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Listar devolve dashboards, opcionalmente filtrados por cliente exato.
func (uc *DashboardUseCase) Listar(cliente string) ([]*entity.Dashboard, error) {
	return uc.repo.List(cliente)
}

// ListarParaPerfil aplica a visibilidade do Perfil: tipos privilegiados veem
// tudo, tipos mapeados veem só a própria empresa e o fallback não vê nada.
func (uc *DashboardUseCase) ListarParaPerfil(p entity.Perfil) ([]*entity.Dashboard, error) {
	if p.TodasEmpresas {
		return uc.repo.List("")
	}
	if p.Empresa == "" {
		return []*entity.Dashboard{}, nil
	}
	return uc.repo.List(p.Empresa)
}

// ListarAgrupado devolve os clientes distintos e todos os dashboards, para a
// view que agrupa por cliente.
func (uc *DashboardUseCase) ListarAgrupado() ([]string, []*entity.Dashboard, error) {
	clientes, err := uc.repo.ListClientes()
	if err != nil {
		return nil, nil, err
	}
	dashboards, err := uc.repo.List("")
	if err != nil {
		return nil, nil, err
	}
	return clientes, dashboards, nil
}

// BuscarPorID carrega um dashboard para o formulário de edição.
func (uc *DashboardUseCase) BuscarPorID(id int64) (*entity.Dashboard, error) {
	return uc.repo.GetByID(id)
}

// Criar valida os campos e insere; nome repetido chega como ErrDuplicado.
func (uc *DashboardUseCase) Criar(in dto.DashboardForm) (*entity.Dashboard, error) {
	cliente := strings.TrimSpace(in.Cliente)
	nome := strings.TrimSpace(in.Nome)
	link := strings.TrimSpace(in.Link)
	if cliente == "" || nome == "" || link == "" {
		return nil, domain.ErrValidacao
	}
	d := &entity.Dashboard{Cliente: cliente, Nome: nome, Link: link}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Atualizar sobrescreve os três campos; id inexistente é ErrNaoEncontrado.
func (uc *DashboardUseCase) Atualizar(id int64, in dto.DashboardForm) error {
	existente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existente == nil {
		return domain.ErrNaoEncontrado
	}
	d := &entity.Dashboard{
		ID:      id,
		Cliente: strings.TrimSpace(in.Cliente),
		Nome:    strings.TrimSpace(in.Nome),
		Link:    strings.TrimSpace(in.Link),
	}
	return uc.repo.Update(d)
}

// Excluir remove o dashboard; id inexistente não é erro.
func (uc *DashboardUseCase) Excluir(id int64) error {
	return uc.repo.Delete(id)
}
