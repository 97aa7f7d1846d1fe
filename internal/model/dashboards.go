package model

// DashboardInfo is the menu entry for one screen.
type DashboardInfo struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Theme       string `json:"theme"`
	Path        string `json:"path"`
	Admin       bool   `json:"admin"`
}

// DashboardState is the full render payload of one screen. While audio is
// not yet armed only the enable prompt is returned: Orders and Stats stay
// empty and Prompt carries the message, mirroring the locked screen.
type DashboardState struct {
	Slug         string  `json:"slug"`
	Title        string  `json:"title"`
	Icon         string  `json:"icon"`
	Theme        string  `json:"theme"`
	Category     string  `json:"category,omitempty"`
	AudioEnabled bool    `json:"audio_enabled"`
	Prompt       string  `json:"prompt,omitempty"`
	Connected    bool    `json:"connected"`
	LastCue      string  `json:"last_cue,omitempty"`
	Orders       []Order `json:"orders"`
	Stats        Stats   `json:"stats"`
}

type ClearOrdersDTO struct {
	Confirm bool `json:"confirm"`
}
