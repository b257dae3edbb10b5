package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/astroflow/astroflow/internal/models"
)

// MaxDailyIntentions is a display-layer convention; the store itself does
// not enforce a task cap.
const MaxDailyIntentions = 3

type TaskAddCmd struct {
	Text  string `arg:"" help:"Intention text."`
	Theme string `help:"Optional theme: growth, healing, or creativity." enum:",growth,healing,creativity" default:""`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if len(ctx.Store.TodayEntry().Tasks) >= MaxDailyIntentions {
		fmt.Printf("You already have %d intentions today. Keeping the list short keeps it honest.\n", MaxDailyIntentions)
		return nil
	}

	task := models.DailyTask{
		ID:    uuid.NewString(),
		Text:  c.Text,
		Theme: models.TaskTheme(c.Theme),
	}
	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}

	fmt.Printf("Added intention: %s\n", c.Text)
	return nil
}

type TaskListCmd struct{}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	entry := ctx.Store.TodayEntry()
	if len(entry.Tasks) == 0 {
		fmt.Println("No intentions set for today.")
		return nil
	}

	fmt.Printf("Intentions for %s:\n", entry.Date)
	for i, task := range entry.Tasks {
		line := fmt.Sprintf("  %d. %s %s", i+1, checkbox(task.Completed), task.Text)
		if task.Theme != "" {
			line += fmt.Sprintf(" (%s)", task.Theme)
		}
		fmt.Println(line)
	}
	return nil
}

type TaskDoneCmd struct {
	Number int `arg:"" help:"Intention number from 'task list'."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	entry := ctx.Store.TodayEntry()
	if c.Number < 1 || c.Number > len(entry.Tasks) {
		return fmt.Errorf("no intention #%d today", c.Number)
	}

	task := entry.Tasks[c.Number-1]
	if err := ctx.Store.ToggleTask(task.ID); err != nil {
		return err
	}

	state := "done"
	if task.Completed {
		state = "not done"
	}
	fmt.Printf("Marked %q %s.\n", task.Text, state)
	return nil
}
