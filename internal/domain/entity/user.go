// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tier is the subscription level of an account. The values are persisted
// verbatim in the profiles table.
type Tier string

const (
	TierFree          Tier = "Free"
	TierPro           Tier = "Pro"
	TierSmallBusiness Tier = "Small Business"
	TierEnterprise    Tier = "Enterprise"
)

// Tiers lists every known tier in upgrade order.
var Tiers = []Tier{TierFree, TierPro, TierSmallBusiness, TierEnterprise}

// ParseTier matches s against the known tiers case-insensitively.
func ParseTier(s string) (Tier, bool) {
	s = strings.TrimSpace(s)
	for _, t := range Tiers {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}

	return "", false
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	return slices.Contains(Tiers, t)
}

// User is the profile row of an account: identity plus subscription tier.
type User struct {
	ID        uuid.UUID `json:"id"`         // Same ID as the credential owner.
	Email     string    `json:"email"`      // Login email, unique.
	Tier      Tier      `json:"tier"`       // Drives every capability check.
	CreatedAt time.Time `json:"created_at"` // Sign-up time.
	UpdatedAt time.Time `json:"updated_at"` // Last tier change.
}
