package http

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Flash é a notificação transiente exibida uma única vez na próxima página
// renderizada, no estilo das mensagens de formulário.
type Flash struct {
	Categoria string `json:"categoria"` // success, danger, warning, info
	Texto     string `json:"texto"`
}

const flashCookie = "portal_flash"

// setFlash grava a mensagem num cookie de vida curta, consumido no próximo
// render.
func setFlash(c *fiber.Ctx, categoria, texto string) {
	b, _ := json.Marshal(Flash{Categoria: categoria, Texto: texto})
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(string(b)),
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(time.Minute),
	})
}

// popFlash lê e apaga a mensagem pendente, se existir.
func popFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal([]byte(decoded), &f); err != nil {
		return nil
	}
	return &f
}

// render injeta o contexto comum (usuário logado e flash pendente) e delega
// à view engine. O conteúdo dos templates é colaborador externo.
func render(c *fiber.Ctx, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u := CurrentUser(c); u != nil {
		data["username"] = u.Username
	}
	if f := popFlash(c); f != nil {
		data["flash"] = f
	}
	return c.Render(view, data)
}
