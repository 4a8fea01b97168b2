package model

// Probe sources. Every finding and alert carries the source that produced it.
const (
	SourceProfilePage       = "profile_page"
	SourceBioText           = "bio_text"
	SourceEmailVerification = "email_verification"
	SourceSocialFeed        = "social_feed"
	SourceContentIndex      = "content_index"
	SourceOutletDirectory   = "outlet_directory"
)

// Finding is the raw, typed result of one probe invocation.
// A finding with Changed=false never becomes an alert; neither does one whose
// Confidence is below the configured threshold for its alert type.
type Finding struct {
	Changed    bool   `json:"changed"`
	NewValue   string `json:"new_value,omitempty"`
	Confidence int    `json:"confidence"` // 0..100
	Source     string `json:"source"`

	// Count carries the raw item count for count-based probes
	// (recent posts, published pieces). Zero for text probes.
	Count int `json:"count,omitempty"`
}
