package cli

import (
	"fmt"

	"github.com/astroflow/astroflow/internal/store"
)

type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" help:"Show the current profile." default:"1"`
	Set  ProfileSetCmd  `cmd:"" help:"Update profile preferences."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	p := ctx.Store.Profile()

	fmt.Println("Profile:")
	fmt.Printf("  onboarding done:    %t\n", p.OnboardingDone)
	if p.BirthDate != "" {
		fmt.Printf("  birth:              %s %s %s\n", p.BirthDate, p.BirthTime, p.BirthLocation)
	}
	fmt.Printf("  low energy mode:    %t\n", p.LowEnergyMode)
	fmt.Printf("  notifications:      %t\n", p.NotificationsEnabled)
	fmt.Printf("  midday reminder:    %s\n", p.MiddayReminderTime)
	fmt.Printf("  evening reminder:   %s\n", p.EveningReminderTime)
	fmt.Printf("  personalization:    %t\n", p.UseForPersonalization)
	fmt.Printf("  share to community: %t\n", p.ShareToCommunity)

	if len(p.QuizResults) > 0 {
		fmt.Println("  quiz answers:")
		for id, answer := range p.QuizResults {
			fmt.Printf("    %s: %s\n", id, answer)
		}
	}
	return nil
}

type ProfileSetCmd struct {
	MiddayReminder  string `help:"Midday reminder time (HH:MM)."`
	EveningReminder string `help:"Evening reminder time (HH:MM)."`
	Notifications   *bool  `help:"Enable or disable reminders."`
	LowEnergyMode   *bool  `help:"Enable or disable low energy mode."`
	Personalization *bool  `help:"Use answers to personalize insights."`
	Community       *bool  `help:"Share anonymized reflections."`
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	patch := store.ProfilePatch{
		NotificationsEnabled:  c.Notifications,
		LowEnergyMode:         c.LowEnergyMode,
		UseForPersonalization: c.Personalization,
		ShareToCommunity:      c.Community,
	}
	if c.MiddayReminder != "" {
		patch.MiddayReminderTime = &c.MiddayReminder
	}
	if c.EveningReminder != "" {
		patch.EveningReminderTime = &c.EveningReminder
	}

	if err := ctx.Store.SetProfile(patch); err != nil {
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}
