package dto

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User   UserOutput `json:"user"`
	Tokens TokenPair  `json:"tokens"`
}
