package domain

type Category struct {
	ID          ID     `json:"id,omitempty"`
	Name        string `json:"nome,omitempty"`
	Description string `json:"descricao,omitempty"`
}
