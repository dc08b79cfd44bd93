package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSocialLink_URL(t *testing.T) {
	tests := []struct {
		name string
		link SocialLink
		want string
	}{
		{"LinkedIn", SocialLink{Platform: PlatformLinkedIn, Username: "jane"}, "https://linkedin.com/in/jane"},
		{"Twitter", SocialLink{Platform: PlatformTwitter, Username: "jane"}, "https://twitter.com/jane"},
		{"Instagram", SocialLink{Platform: PlatformInstagram, Username: "jane"}, "https://instagram.com/jane"},
		{"GitHub", SocialLink{Platform: PlatformGitHub, Username: "jane"}, "https://github.com/jane"},
		{"Facebook", SocialLink{Platform: PlatformFacebook, Username: "jane"}, "https://facebook.com/jane"},
		{"YouTube", SocialLink{Platform: PlatformYouTube, Username: "jane"}, "https://youtube.com/jane"},
		{"TikTok adds at sign", SocialLink{Platform: PlatformTikTok, Username: "jane"}, "https://tiktok.com/@jane"},
		{"Platform is case-insensitive", SocialLink{Platform: "GitHub", Username: "jane"}, "https://github.com/jane"},
		{"Other with full URL", SocialLink{Platform: PlatformOther, Username: "http://jane.dev"}, "http://jane.dev"},
		{"Other without scheme", SocialLink{Platform: PlatformOther, Username: "jane.dev"}, "https://jane.dev"},
		{"Unknown platform", SocialLink{Platform: "mastodon", Username: "https://mastodon.social/@jane"}, "https://mastodon.social/@jane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.link.URL())
		})
	}
}

func TestSocialLink_ClickType(t *testing.T) {
	assert.Equal(t, "linkedin", SocialLink{Platform: "LinkedIn"}.ClickType())
	assert.True(t, PlatformTikTok.Known())
	assert.False(t, PlatformOther.Known())
}
