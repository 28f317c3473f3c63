package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tahto/portal-bi/internal/application/auth"
	"github.com/tahto/portal-bi/internal/application/usecase"
	"github.com/tahto/portal-bi/internal/domain/repository"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	UserUC            *usecase.UserUseCase
	DashboardUC       *usecase.DashboardUseCase
	UserRepo          repository.UserRepository
	SessionSecret     string
	SessionExpMinutes int
	PowerBIURL        string
}

// Router registra as rotas do portal. A resolução de sessão e o gate de
// primeiro login rodam antes de qualquer handler; as telas de gestão também
// exigem sessão.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(deps.SessionSecret, deps.UserRepo))
	app.Use(FirstLoginGate())

	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionExpMinutes)
	app.Get("/", authHandler.Index)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authHandler.Login)

	protected := app.Group("/", RequireAuth())
	protected.Get("/logout", authHandler.Logout)
	protected.Get("/primeira_troca_senha", authHandler.TrocaSenhaForm)
	protected.Post("/primeira_troca_senha", authHandler.TrocaSenha)

	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/register", userHandler.RegisterForm)
	protected.Post("/register", userHandler.Register)
	protected.Get("/gestao_usuarios", userHandler.Gestao)
	protected.Post("/alterar_tipo/:user_id", userHandler.AlterarTipo)
	protected.Post("/excluir_usuario/:user_id", userHandler.Excluir)
	protected.Post("/resetar_senha/:user_id", userHandler.ResetarSenha)

	dashHandler := NewDashboardHandler(deps.DashboardUC, deps.PowerBIURL)
	protected.Get("/homepage", dashHandler.Homepage)
	protected.Get("/dashboard", dashHandler.Dashboard)
	protected.Get("/register_dashboard", dashHandler.RegisterForm)
	protected.Post("/register_dashboard", dashHandler.Register)
	protected.Get("/gestao_dashboards", dashHandler.Gestao)
	protected.Post("/excluir_dashboard/:id", dashHandler.Excluir)
	protected.Get("/editar_dashboard/:id", dashHandler.EditarForm)
	protected.Post("/editar_dashboard/:id", dashHandler.Editar)
}
