package store

import "github.com/astroflow/astroflow/internal/models"

// ProfilePatch is a partial UserProfile update. Nil fields are left alone;
// QuizResults, when present, replaces the whole mapping.
type ProfilePatch struct {
	OnboardingDone        *bool
	BirthDate             *string
	BirthTime             *string
	BirthLocation         *string
	QuizResults           map[string]string
	LowEnergyMode         *bool
	NotificationsEnabled  *bool
	MiddayReminderTime    *string
	EveningReminderTime   *string
	UseForPersonalization *bool
	ShareToCommunity      *bool
}

func (p ProfilePatch) applyTo(profile *models.UserProfile) {
	if p.OnboardingDone != nil {
		profile.OnboardingDone = *p.OnboardingDone
	}
	if p.BirthDate != nil {
		profile.BirthDate = *p.BirthDate
	}
	if p.BirthTime != nil {
		profile.BirthTime = *p.BirthTime
	}
	if p.BirthLocation != nil {
		profile.BirthLocation = *p.BirthLocation
	}
	if p.QuizResults != nil {
		profile.QuizResults = p.QuizResults
	}
	if p.LowEnergyMode != nil {
		profile.LowEnergyMode = *p.LowEnergyMode
	}
	if p.NotificationsEnabled != nil {
		profile.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.MiddayReminderTime != nil {
		profile.MiddayReminderTime = *p.MiddayReminderTime
	}
	if p.EveningReminderTime != nil {
		profile.EveningReminderTime = *p.EveningReminderTime
	}
	if p.UseForPersonalization != nil {
		profile.UseForPersonalization = *p.UseForPersonalization
	}
	if p.ShareToCommunity != nil {
		profile.ShareToCommunity = *p.ShareToCommunity
	}
}

// DayPatch is a partial DayEntry update. List fields, when present, replace
// the stored list wholesale; callers read-modify-write the full list.
type DayPatch struct {
	MorningEnergy    *models.Energy
	MiddayEnergy     *models.Energy
	Tasks            *[]models.DailyTask
	Reflection       *string
	Synchronicities  *[]string
	Gratitude        *[]string
	EveningCompleted *bool
}

func (p DayPatch) applyTo(entry *models.DayEntry) {
	if p.MorningEnergy != nil {
		entry.MorningEnergy = *p.MorningEnergy
	}
	if p.MiddayEnergy != nil {
		entry.MiddayEnergy = *p.MiddayEnergy
	}
	if p.Tasks != nil {
		entry.Tasks = *p.Tasks
	}
	if p.Reflection != nil {
		entry.Reflection = *p.Reflection
	}
	if p.Synchronicities != nil {
		entry.Synchronicities = *p.Synchronicities
	}
	if p.Gratitude != nil {
		entry.Gratitude = *p.Gratitude
	}
	if p.EveningCompleted != nil {
		entry.EveningCompleted = *p.EveningCompleted
	}
}

// SettingsPatch is a partial Settings update.
type SettingsPatch struct {
	MeditationMinutes *int
	LunarMode         *bool
}

func (p SettingsPatch) applyTo(settings *models.Settings) {
	if p.MeditationMinutes != nil {
		settings.MeditationMinutes = *p.MeditationMinutes
	}
	if p.LunarMode != nil {
		settings.LunarMode = *p.LunarMode
	}
}
