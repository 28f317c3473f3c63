package entity

// Tipos de usuário conhecidos.
const (
	TipoAdmin       = 1
	TipoTahto       = 2
	TipoIcatu       = 3
	TipoIfood       = 4
	TipoNio         = 5
	TipoSamsClub    = 6
	TipoQuintoAndar = 7
	TipoVero        = 8
	TipoZara        = 9
)

// Perfil decide o que um tipo de usuário enxerga: qual empresa filtra os
// dashboards e qual view de landing é renderizada.
//
// Invariante: TodasEmpresas e Empresa nunca são preenchidos juntos. O
// fallback (tipo desconhecido) tem os dois vazios e não enxerga dashboard
// nenhum.
type Perfil struct {
	Empresa       string
	TodasEmpresas bool
	Landing       string
}

// PerfilDoTipo resolve o Perfil de um tipo de usuário. Os tipos 1 (Admin) e
// 2 (Tahto) veem dashboards de todas as empresas; tipos fora da tabela caem
// no fallback com a landing genérica.
func PerfilDoTipo(tipo int) Perfil {
	switch tipo {
	case TipoAdmin:
		return Perfil{TodasEmpresas: true, Landing: "homepage_1"}
	case TipoTahto:
		return Perfil{TodasEmpresas: true, Landing: "homepage_2"}
	case TipoIcatu:
		return Perfil{Empresa: "Icatu", Landing: "homepage_3"}
	case TipoIfood:
		return Perfil{Empresa: "Ifood", Landing: "homepage_4"}
	case TipoNio:
		return Perfil{Empresa: "Nio", Landing: "homepage_5"}
	case TipoSamsClub:
		return Perfil{Empresa: "Sam's Club", Landing: "homepage_6"}
	case TipoQuintoAndar:
		return Perfil{Empresa: "Quinto Andar", Landing: "homepage_7"}
	case TipoVero:
		return Perfil{Empresa: "Vero", Landing: "homepage_8"}
	case TipoZara:
		return Perfil{Empresa: "Zara", Landing: "homepage_9"}
	default:
		return Perfil{Landing: "homepage"}
	}
}
