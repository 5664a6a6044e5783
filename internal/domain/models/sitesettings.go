// internal/domain/models/sitesettings.go
package models

// SiteSettings holds the header branding and the signed-in user chip.
// There is no authentication, so the user chip is configuration.
type SiteSettings struct {
	SiteName     string
	SiteSubtitle string
	UserName     string
	UserRole     string
}

// Default branding used when no configuration overrides it.
const (
	DefaultSiteName     = "Consultation Hub"
	DefaultSiteSubtitle = "Clinical Policy Management"
	DefaultUserName     = "Kerry Elevsen"
	DefaultUserRole     = "Clinical Lead"
)

// DefaultSiteSettings returns the built-in branding.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:     DefaultSiteName,
		SiteSubtitle: DefaultSiteSubtitle,
		UserName:     DefaultUserName,
		UserRole:     DefaultUserRole,
	}
}

// FirstName returns the first word of UserName for greetings.
func (s SiteSettings) FirstName() string {
	for i, r := range s.UserName {
		if r == ' ' {
			return s.UserName[:i]
		}
	}
	return s.UserName
}
