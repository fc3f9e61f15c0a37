package domain

import "time"

// SubscriptionTier is the plan an account is on.
type SubscriptionTier string

const (
	TierFree   SubscriptionTier = "free"
	TierPlus   SubscriptionTier = "plus"
	TierFamily SubscriptionTier = "family"
)

// SubscriptionStatus reflects billing state as reported by the server.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// UserRole distinguishes the account owner from invited members.
// Authorization decisions based on it are made server-side.
type UserRole string

const (
	RoleOwner  UserRole = "owner"
	RoleMember UserRole = "member"
)

// Account owns the subscription state shared by its members.
type Account struct {
	ID                 string             `json:"id"`
	SubscriptionTier   SubscriptionTier   `json:"subscription_tier"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	MaxMembers         int                `json:"max_members"`
	CreatedAt          time.Time          `json:"created_at"`
}

// User belongs to exactly one account.
type User struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPatch holds the user fields the server accepts on update.
type UserPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}
