package cli

import (
	"fmt"
	"os"
)

type ExportCmd struct {
	Out string `help:"Write the export to a file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if c.Out == "" {
		return ctx.Store.WriteExport(os.Stdout)
	}

	data, err := ctx.Store.ExportJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	fmt.Printf("Exported to %s\n", c.Out)
	return nil
}
