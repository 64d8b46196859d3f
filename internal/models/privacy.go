package models

// Privacy is the per-resource visibility tier.
type Privacy string

const (
	PrivacyPublic      Privacy = "PUBLIC"
	PrivacyFriendsOnly Privacy = "FRIENDS_ONLY"
	PrivacyOnlyMe      Privacy = "ONLY_ME"
)
