package entity

import "time"

// SettingsID is the fixed primary key of the site settings row.
const SettingsID = 1

// Settings is the site-wide configuration singleton.
type Settings struct {
	ShowScrollingHeadline bool      `json:"showScrollingHeadline"`
	ShowSidebar           bool      `json:"showSidebar"`
	EnableTicketing       bool      `json:"enableTicketing"`
	MaintenanceMode       bool      `json:"maintenanceMode"`
	Headlines             []string  `json:"headlines"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// DefaultSettings returns the values a fresh store starts with.
func DefaultSettings() *Settings {
	return &Settings{
		ShowScrollingHeadline: true,
		Headlines:             []string{},
	}
}

// SettingsPatch carries the fields a settings update supplied; nil fields are left untouched.
type SettingsPatch struct {
	ShowScrollingHeadline *bool
	ShowSidebar           *bool
	EnableTicketing       *bool
	MaintenanceMode       *bool
	Headlines             []string
	HeadlinesSet          bool
}

// IsEmpty reports whether the patch changes nothing.
func (p SettingsPatch) IsEmpty() bool {
	return p.ShowScrollingHeadline == nil && p.ShowSidebar == nil &&
		p.EnableTicketing == nil && p.MaintenanceMode == nil && !p.HeadlinesSet
}

// Apply writes the supplied fields onto s.
func (p SettingsPatch) Apply(s *Settings) {
	if p.ShowScrollingHeadline != nil {
		s.ShowScrollingHeadline = *p.ShowScrollingHeadline
	}
	if p.ShowSidebar != nil {
		s.ShowSidebar = *p.ShowSidebar
	}
	if p.EnableTicketing != nil {
		s.EnableTicketing = *p.EnableTicketing
	}
	if p.MaintenanceMode != nil {
		s.MaintenanceMode = *p.MaintenanceMode
	}
	if p.HeadlinesSet {
		s.Headlines = p.Headlines
		if s.Headlines == nil {
			s.Headlines = []string{}
		}
	}
}
