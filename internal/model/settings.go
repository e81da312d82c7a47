package model

type Settings struct {
	Theme         string `json:"theme"` // light or dark
	DisplayName   string `json:"display_name,omitempty"`
	Notifications bool   `json:"notifications"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:         "light",
		Notifications: true,
	}
}
