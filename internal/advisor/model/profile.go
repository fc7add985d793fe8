package model

import "strings"

// Profile holds what the onboarding screens collected. Every field is optional.
type Profile struct {
	Name               string `json:"name,omitempty"`
	City               string `json:"city,omitempty"`
	Country            string `json:"country,omitempty"`
	Language           string `json:"language,omitempty"`
	PermissionsGranted bool   `json:"permissions_granted,omitempty"`
}

// Visitor is a Profile with every default applied. Handlers only see this.
type Visitor struct {
	Name               string
	City               string
	Country            string
	Language           string
	PermissionsGranted bool
	SavedCrops         []string
}

var DefaultVisitor = Visitor{
	Name:     "Farmer",
	City:     "Delhi",
	Country:  "IN",
	Language: "en",
}

// Languages offered on the language screen.
var Languages = []Language{
	{Code: "en", Label: "English"},
	{Code: "hi", Label: "हिन्दी"},
	{Code: "mr", Label: "मराठी"},
	{Code: "ta", Label: "தமிழ்"},
	{Code: "te", Label: "తెలుగు"},
	{Code: "pa", Label: "ਪੰਜਾਬੀ"},
}

type Language struct {
	Code  string
	Label string
}

// NormalizeLanguage returns code when it is offered, else English.
func NormalizeLanguage(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range Languages {
		if l.Code == code {
			return code
		}
	}
	return DefaultVisitor.Language
}

// Resolve fills every empty field from defaults.
func (p Profile) Resolve(defaults Visitor) Visitor {
	v := Visitor{
		Name:               firstNonEmpty(p.Name, defaults.Name),
		City:               firstNonEmpty(p.City, defaults.City),
		Country:            firstNonEmpty(p.Country, defaults.Country),
		Language:           firstNonEmpty(p.Language, defaults.Language),
		PermissionsGranted: p.PermissionsGranted,
	}
	return v
}

// NextOnboardingStep returns the path of the first screen still to be
// completed, or "" when the visitor may reach the dashboard.
func (p Profile) NextOnboardingStep() string {
	switch {
	case p.Language == "":
		return "/"
	case p.Name == "":
		return "/register"
	case !p.PermissionsGranted:
		return "/permissions"
	default:
		return ""
	}
}

func firstNonEmpty(v, fallback string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return fallback
}
