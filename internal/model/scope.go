package model

// Scope is the resolved caller identity attached to every authenticated
// request. Handlers receive it instead of touching the raw token.
type Scope struct {
	UserID string `json:"user_id"`
}
