package forms

// Registration is the sign-up form.
type Registration struct {
	FullName     string `json:"nome_completo" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"senha" validate:"required,min=6"`
	Confirmation string `json:"confirmacaoSenha" validate:"eqfield=Password"`
	Phone        string `json:"numero_telefone" validate:"required,phone_br"`
	BirthDate    string `json:"data_nascimento" validate:"required"`
}

type Login struct {
	Identifier string `json:"identificador" validate:"required"`
	Secret     string `json:"senha" validate:"required"`
}

type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPassword struct {
	Email        string `json:"email" validate:"required,email"`
	Code         string `json:"code" validate:"required,reset_code"`
	NewPassword  string `json:"newPassword" validate:"required,min=6"`
	Confirmation string `json:"confirmacaoSenha" validate:"eqfield=NewPassword"`
}

type Profile struct {
	FullName  string `json:"nome_completo" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"numero_telefone" validate:"required,phone_br"`
	BirthDate string `json:"data_nascimento"`
}

type Address struct {
	Nickname   string `json:"apelido" validate:"required,max=100"`
	CEP        string `json:"cep" validate:"required,cep"`
	Street     string `json:"rua" validate:"required"`
	Number     string `json:"numero" validate:"required"`
	Complement string `json:"complemento"`
	District   string `json:"bairro" validate:"required"`
	City       string `json:"cidade" validate:"required"`
	State      string `json:"estado" validate:"required"`
	Default    bool   `json:"padrao"`
}

// Card holds the card payment fields; they are checked locally and never sent.
type Card struct {
	Number string `json:"numero" validate:"required,card_number"`
	Holder string `json:"nome" validate:"required"`
	Expiry string `json:"validade" validate:"required,card_expiry"`
	CVV    string `json:"cvv" validate:"required,cvv"`
}

type Cancellation struct {
	Justification string `json:"justificativa" validate:"required,min=10"`
}

// Product is the admin product form. Price is typed as "12,50".
type Product struct {
	Name        string `json:"nome" validate:"required"`
	Description string `json:"descricao"`
	Price       string `json:"preco" validate:"required"`
	Stock       int    `json:"estoque" validate:"min=0"`
	CategoryID  string `json:"categoriaId" validate:"required"`
	Active      *bool  `json:"ativo"`
	Image       string `json:"imagem"`
}

type Category struct {
	Name        string `json:"nome" validate:"required"`
	Description string `json:"descricao"`
}

type RoleActive struct {
	Role   string `json:"role" validate:"required,oneof=admin cliente"`
	Active bool   `json:"ativo"`
}

type PaymentChange struct {
	Method string `json:"metodoPagamento" validate:"required,oneof=cartao pix boleto"`
}
