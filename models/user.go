package models

// UserProfile is the server-side description of the authenticated account.
// It is replaced wholesale from every login, verify, and profile-update
// response and is never partially merged on the client.
type UserProfile struct {
	// ID is the server-assigned account identifier.
	ID string `json:"id"`

	// Email is the unique account email used for password login.
	Email string `json:"email"`

	// Name is the display name of the user. It may be shown in UI.
	Name string `json:"name"`

	// PictureURL is an optional avatar URL populated for accounts created
	// through Google sign-in. Empty for password accounts.
	PictureURL string `json:"picture,omitempty"`
}
