package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Println("Initialized astroflow storage.")
	fmt.Println("Run 'astroflow onboard' to set up your profile.")
	return nil
}
