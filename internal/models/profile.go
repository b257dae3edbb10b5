package models

// UserProfile is the singleton onboarding/preferences record. Reminder times
// are HH:MM strings consumed by the notification layer as-is.
type UserProfile struct {
	OnboardingDone        bool              `json:"onboardingDone"`
	BirthDate             string            `json:"birthDate,omitempty"`
	BirthTime             string            `json:"birthTime,omitempty"`
	BirthLocation         string            `json:"birthLocation,omitempty"`
	QuizResults           map[string]string `json:"quizResults,omitempty"`
	LowEnergyMode         bool              `json:"lowEnergyMode"`
	NotificationsEnabled  bool              `json:"notificationsEnabled"`
	MiddayReminderTime    string            `json:"middayReminderTime"`
	EveningReminderTime   string            `json:"eveningReminderTime"`
	UseForPersonalization bool              `json:"useForPersonalization"`
	ShareToCommunity      bool              `json:"shareToCommunity"`
}
