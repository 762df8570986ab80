package cli

import (
	"context"
	"fmt"
)

type MigrateCmd struct{}

// Run opens the store, which applies any pending migrations, and exits.
func (c *MigrateCmd) Run(ctx *Context) error {
	s, err := ctx.openStore(context.Background())
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Printf("Database ready at: %s\n", ctx.Config.Database.Path)
	return nil
}
