// Package owners holds the sample command providers registered by the CLI.
package owners

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sipeed/picocmd/pkg/commands"
)

// Calc provides numeric commands. Toggle state lives on the instance, so
// handlers must run against the registered owner.
type Calc struct {
	Verbose bool
}

func (c *Calc) OwnerID() string { return "calc" }

func (c *Calc) Commands() []commands.Definition {
	return []commands.Definition{
		{
			Name:        "test",
			Description: "Echo one required and one optional integer",
			Params:      commands.Shape{commands.IntArg(), commands.Opt(commands.IntArg())},
			Returns:     commands.ReturnString,
			Handler: func(o commands.Owner, a commands.Args) (string, error) {
				return o.(*Calc).test(a.Int(0), a.Value(1))
			},
		},
		{
			Name:        "add",
			Aliases:     []string{"sum"},
			Description: "Add two numbers",
			Params:      commands.Shape{commands.DoubleArg(), commands.DoubleArg()},
			Returns:     commands.ReturnString,
			Handler: func(o commands.Owner, a commands.Args) (string, error) {
				return o.(*Calc).format(a.Double(0) + a.Double(1)), nil
			},
		},
		{
			Name:        "div",
			Description: "Divide two numbers",
			Params:      commands.Shape{commands.DoubleArg(), commands.DoubleArg()},
			Returns:     commands.ReturnString,
			Handler: func(o commands.Owner, a commands.Args) (string, error) {
				if a.Double(1) == 0 {
					return "", errors.New("division by zero")
				}
				return o.(*Calc).format(a.Double(0) / a.Double(1)), nil
			},
		},
		{
			Name:        "volume",
			Description: "Set a volume between 0 and 10",
			Params: commands.Shape{
				commands.IntArg().WithClamp(commands.DefaultDigitClamp()),
			},
			Returns: commands.ReturnString,
			Handler: func(_ commands.Owner, a commands.Args) (string, error) {
				return fmt.Sprintf("Volume set to %d", a.Int(0)), nil
			},
		},
		{
			Name:        "verbose",
			Description: "Turn verbose number formatting on or off",
			Params:      commands.Shape{commands.BoolArg()},
			Returns:     commands.ReturnNone,
			Handler: func(o commands.Owner, a commands.Args) (string, error) {
				o.(*Calc).Verbose = a.Bool(0)
				return "verbose updated", nil
			},
		},
	}
}

func (c *Calc) test(one int, two commands.Value) (string, error) {
	if !two.Present {
		return fmt.Sprintf("found no testTwo, %d", one), nil
	}
	return fmt.Sprintf("found testTwo, %d + %d", one, two.Int()), nil
}

func (c *Calc) format(v float64) string {
	if c.Verbose {
		return strconv.FormatFloat(v, 'f', 6, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
