// Package policy resolves what an account may do from its subscription tier.
package policy

import "loopcard/internal/domain/entity"

const (
	freeMaxCards = 2
	paidMaxCards = 5
)

// Capabilities is the full set of tier-gated permissions.
type Capabilities struct {
	MaxCards                 int  `json:"max_cards"`
	CanUseAIFeatures         bool `json:"can_use_ai_features"`
	CanUseGallery            bool `json:"can_use_gallery"`
	CanViewAdvancedAnalytics bool `json:"can_view_advanced_analytics"`
}

// Resolve returns the capabilities of tier. Unknown tiers get the Free set.
func Resolve(tier entity.Tier) Capabilities {
	switch tier {
	case entity.TierPro:
		return Capabilities{
			MaxCards:                 paidMaxCards,
			CanUseAIFeatures:         true,
			CanUseGallery:            true,
			CanViewAdvancedAnalytics: true,
		}
	case entity.TierSmallBusiness, entity.TierEnterprise:
		return Capabilities{
			MaxCards:      paidMaxCards,
			CanUseGallery: true,
		}
	default:
		return Capabilities{MaxCards: freeMaxCards}
	}
}

// CanCreateCard reports whether an account of tier that already owns owned
// cards may create another one.
func CanCreateCard(tier entity.Tier, owned int) bool {
	return owned < Resolve(tier).MaxCards
}
