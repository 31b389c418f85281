package owners

import (
	"fmt"
	"strings"

	"github.com/sipeed/picocmd/pkg/commands"
)

type Text struct{}

func (t *Text) OwnerID() string { return "text" }

func (t *Text) Commands() []commands.Definition {
	return []commands.Definition{
		{
			Name:        "echo",
			Aliases:     []string{"say"},
			Description: "Repeat a string, cut to 256 characters",
			Params: commands.Shape{
				commands.StringArg().WithClamp(commands.DefaultStringClamp()),
			},
			Returns: commands.ReturnString,
			Handler: func(_ commands.Owner, a commands.Args) (string, error) {
				return a.Str(0), nil
			},
		},
		{
			Name:        "repeat",
			Description: "Repeat a word up to five times",
			Params: commands.Shape{
				commands.StringArg().WithClamp(commands.NewStringClamp(true, 1, 32)),
				commands.Opt(commands.IntArg().WithClamp(commands.NewDigitClamp(false, 1, 5))),
			},
			Returns: commands.ReturnString,
			Handler: func(_ commands.Owner, a commands.Args) (string, error) {
				n, ok := a.OptInt(1)
				if !ok {
					n = 2
				}
				return strings.TrimSpace(strings.Repeat(a.Str(0)+" ", n)), nil
			},
		},
		{
			Name:        "greet",
			Description: "Greet someone by name",
			Params: commands.Shape{
				commands.StringArg().WithClamp(commands.NewStringClamp(true, 2, 16)),
				commands.Opt(commands.BoolArg()),
			},
			Returns: commands.ReturnString,
			Handler: func(_ commands.Owner, a commands.Args) (string, error) {
				greeting := fmt.Sprintf("Hello, %s", a.Str(0))
				if shout, ok := a.OptBool(1); ok && shout {
					greeting = strings.ToUpper(greeting) + "!"
				}
				return greeting, nil
			},
		},
	}
}
