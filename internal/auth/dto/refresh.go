package dto

// RefreshInput may arrive with an empty token; the handler falls back to the
// refresh cookie before the service sees it.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}
