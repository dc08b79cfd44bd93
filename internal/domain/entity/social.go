package entity

import "strings"

// Platform names a social network. Anything outside the known set is
// treated as a free-form link.
type Platform string

const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformGitHub    Platform = "github"
	PlatformFacebook  Platform = "facebook"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformOther     Platform = "other"
)

var platformBaseURLs = map[Platform]string{
	PlatformLinkedIn:  "https://linkedin.com/in/",
	PlatformTwitter:   "https://twitter.com/",
	PlatformInstagram: "https://instagram.com/",
	PlatformGitHub:    "https://github.com/",
	PlatformFacebook:  "https://facebook.com/",
	PlatformYouTube:   "https://youtube.com/",
	PlatformTikTok:    "https://tiktok.com/@",
}

// SocialLink is one entry in a card's ordered social list.
type SocialLink struct {
	ID       string   `json:"id"`
	Platform Platform `json:"platform"`
	Username string   `json:"username"` // Handle, or a full URL for PlatformOther.
	Enabled  bool     `json:"enabled"`
}

// Known reports whether p has a fixed profile URL scheme.
func (p Platform) Known() bool {
	_, ok := platformBaseURLs[p.normalized()]

	return ok
}

func (p Platform) normalized() Platform {
	return Platform(strings.ToLower(strings.TrimSpace(string(p))))
}

// URL resolves the public profile link of the entry.
func (s SocialLink) URL() string {
	username := strings.TrimSpace(s.Username)
	if base, ok := platformBaseURLs[s.Platform.normalized()]; ok {
		return base + username
	}

	if strings.HasPrefix(username, "http") {
		return username
	}

	return "https://" + username
}

// ClickType is the value recorded when a visitor follows this entry.
func (s SocialLink) ClickType() string {
	return string(s.Platform.normalized())
}
