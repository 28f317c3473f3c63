package entity

// Role é uma linha de tipo_usuario (dados de referência pré-carregados).
type Role struct {
	ID     int64
	Tipo   int
	Classe string
}

// ClasseAdmin é a classe reservada à administração; fica fora da lista de
// tipos oferecida no cadastro de usuários.
const ClasseAdmin = "Admin"
