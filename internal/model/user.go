package model

// User is the identity the auth middleware resolves from a bearer token.
// Pesona never manages credentials itself; tokens are issued by the
// external identity provider and only verified here.
type User struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	PhotoURL    *string `json:"photoUrl"`
}
