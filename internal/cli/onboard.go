package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/astroflow/astroflow/internal/store"
)

// quizQuestions mirrors the onboarding quiz; chosen option text is stored
// verbatim keyed by question id.
var quizQuestions = []struct {
	ID      string
	Prompt  string
	Options []string
}{
	{
		ID:     "pace",
		Prompt: "How do you like your days to move?",
		Options: []string{
			"Slow and spacious",
			"Steady with structure",
			"Fast and full",
		},
	},
	{
		ID:     "focus",
		Prompt: "Where do you want more alignment?",
		Options: []string{
			"Work and purpose",
			"Rest and recovery",
			"Relationships",
			"Creativity",
		},
	},
	{
		ID:     "ritual",
		Prompt: "Which ritual calls to you most?",
		Options: []string{
			"Morning intention setting",
			"Midday energy check-in",
			"Evening reflection",
			"Meditation",
		},
	},
}

type OnboardCmd struct{}

func (c *OnboardCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	profile := ctx.Store.Profile()
	if profile.OnboardingDone {
		fmt.Println("Onboarding already completed. Use 'astroflow profile set' to change preferences.")
		return nil
	}

	birthDate := profile.BirthDate
	birthTime := profile.BirthTime
	birthLocation := profile.BirthLocation
	midday := profile.MiddayReminderTime
	evening := profile.EveningReminderTime
	notifications := profile.NotificationsEnabled
	personalization := profile.UseForPersonalization
	community := profile.ShareToCommunity

	quizAnswers := make([]string, len(quizQuestions))

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Birth date (YYYY-MM-DD, optional)").
				Value(&birthDate),
			huh.NewInput().
				Title("Birth time (HH:MM, optional)").
				Value(&birthTime),
			huh.NewInput().
				Title("Birth location (optional)").
				Value(&birthLocation),
		),
	}

	for i, q := range quizQuestions {
		var options []huh.Option[string]
		for _, opt := range q.Options {
			options = append(options, huh.NewOption(opt, opt))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title(q.Prompt).
				Options(options...).
				Value(&quizAnswers[i]),
		))
	}

	groups = append(groups, huh.NewGroup(
		huh.NewInput().
			Title("Midday reminder time (HH:MM)").
			Value(&midday),
		huh.NewInput().
			Title("Evening reminder time (HH:MM)").
			Value(&evening),
		huh.NewConfirm().
			Title("Enable reminders?").
			Value(&notifications),
		huh.NewConfirm().
			Title("Use your answers to personalize insights?").
			Value(&personalization),
		huh.NewConfirm().
			Title("Share anonymized reflections with the community?").
			Value(&community),
	))

	if err := huh.NewForm(groups...).Run(); err != nil {
		return fmt.Errorf("onboarding aborted: %w", err)
	}

	answers := make(map[string]string, len(quizQuestions))
	for i, q := range quizQuestions {
		answers[q.ID] = quizAnswers[i]
	}

	done := true
	patch := store.ProfilePatch{
		OnboardingDone:        &done,
		BirthDate:             &birthDate,
		BirthTime:             &birthTime,
		BirthLocation:         &birthLocation,
		QuizResults:           answers,
		MiddayReminderTime:    &midday,
		EveningReminderTime:   &evening,
		NotificationsEnabled:  &notifications,
		UseForPersonalization: &personalization,
		ShareToCommunity:      &community,
	}
	if err := ctx.Store.SetProfile(patch); err != nil {
		return err
	}

	fmt.Println("Welcome to AstroFlow. Your profile is set.")
	return nil
}
