package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "cliente"
	// RoleNone is used when the profile carries no role.
	RoleNone Role = "none"
)

// User is the profile returned at login and by /cliente/{id}.
type User struct {
	ID        ID        `json:"id,omitempty"`
	ClientID  ID        `json:"clienteId,omitempty"`
	FullName  string    `json:"nome_completo,omitempty"`
	Email     string    `json:"email,omitempty"`
	BirthDate string    `json:"data_nascimento,omitempty"`
	Phone     string    `json:"numero_telefone,omitempty"`
	Role      Role      `json:"role,omitempty"`
	Active    bool      `json:"ativo"`
	Addresses []Address `json:"enderecos,omitempty"`
}

// Key returns the id used in per-user endpoints.
func (u User) Key() ID {
	if u.ID != "" {
		return u.ID
	}
	return u.ClientID
}

func (u User) EffectiveRole() Role {
	if u.Role == "" {
		return RoleNone
	}
	return u.Role
}

// DefaultAddress returns the address flagged padrao, or nil.
func (u User) DefaultAddress() *Address {
	for i := range u.Addresses {
		if u.Addresses[i].Default {
			a := u.Addresses[i]
			return &a
		}
	}
	return nil
}

type Address struct {
	ID         ID     `json:"id,omitempty"`
	ClientID   ID     `json:"clienteId,omitempty"`
	Nickname   string `json:"apelido"`
	CEP        string `json:"cep"`
	Street     string `json:"rua"`
	Number     string `json:"numero"`
	Complement string `json:"complemento,omitempty"`
	District   string `json:"bairro"`
	City       string `json:"cidade"`
	State      string `json:"estado"`
	Default    bool   `json:"padrao"`
}
