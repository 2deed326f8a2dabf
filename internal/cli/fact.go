package cli

import (
	"fmt"

	"github.com/julianstephens/ecotrack/internal/facts"
)

type FactCmd struct{}

func (c *FactCmd) Run(ctx *Context) error {
	fmt.Printf("💡 Did you know? %s\n", facts.Random())
	return nil
}
