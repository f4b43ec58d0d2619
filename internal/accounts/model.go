package accounts

import "time"

// Plan is the subscription tier shown in the dashboard.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanPremium    Plan = "premium"
	PlanEnterprise Plan = "enterprise"
)

// Profile is the public part of an account. The password digest is never
// part of it. JSON tags match the persisted layout under the "users" key.
type Profile struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Country   string    `json:"country,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Plan      Plan      `json:"plan"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfilePatch carries optional field updates for UpdateProfile.
// Nil fields are left untouched.
type ProfilePatch struct {
	Nickname *string
	Email    *string
	Phone    *string
	Country  *string
	Avatar   *string
	Plan     *Plan
}

// credentialEntry is the stored record: one profile plus its password
// digest (hex-encoded SHA-256).
type credentialEntry struct {
	User         Profile `json:"user"`
	PasswordHash string  `json:"passwordHash"`
}
