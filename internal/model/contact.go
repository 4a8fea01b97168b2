package model

// Contact represents a tracked media contact monitored for external changes.
// A contact is immutable for the duration of one monitoring run.
type Contact struct {
	ID           string `json:"id"`
	TenantID     string `json:"tenant_id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	ProfileURL   string `json:"profile_url,omitempty"`
	SocialHandle string `json:"social_handle,omitempty"`
	Outlet       string `json:"outlet,omitempty"`
	IsActive     bool   `json:"is_active"`
	IsVerified   bool   `json:"is_verified"`
}
