package commands

import (
	"errors"
	"fmt"
	"strings"
)

// BuiltinOwner provides the help command for whatever else is registered.
type BuiltinOwner struct {
	Registry *Registry
	Catalyst string
}

func (b *BuiltinOwner) OwnerID() string { return "builtin" }

func (b *BuiltinOwner) Commands() []Definition {
	return []Definition{
		{
			Name:        "help",
			Aliases:     []string{"commands", "?"},
			Description: "List commands, or describe one",
			Params:      Shape{Opt(StringArg())},
			Returns:     ReturnString,
			Handler: func(owner Owner, args Args) (string, error) {
				return owner.(*BuiltinOwner).help(args)
			},
		},
	}
}

func (b *BuiltinOwner) help(args Args) (string, error) {
	if b.Registry == nil {
		return "", errors.New("command registry not available")
	}
	topic, ok := args.OptString(0)
	if !ok {
		return FormatHelpMessage(b.catalyst(), b.Registry.Handlers()), nil
	}

	topic = strings.TrimPrefix(topic, b.catalyst())
	if h, found := b.Registry.Resolve(topic); found {
		return FormatHelpMessage(b.catalyst(), []*RegisteredHandler{h}), nil
	}
	if suggestions := b.Registry.Suggest(topic); len(suggestions) > 0 {
		return fmt.Sprintf("Unknown command %s. Did you mean: %s?", topic, strings.Join(suggestions, ", ")), nil
	}
	return fmt.Sprintf("Unknown command %s.", topic), nil
}

func (b *BuiltinOwner) catalyst() string {
	if b.Catalyst == "" {
		return DefaultCatalyst
	}
	return b.Catalyst
}

// FormatHelpMessage renders one line per handler:
// ".name arg types - description (aliases: a, b)".
func FormatHelpMessage(catalyst string, handlers []*RegisteredHandler) string {
	if len(handlers) == 0 {
		return "No commands available."
	}

	lines := make([]string, 0, len(handlers))
	for _, h := range handlers {
		names := h.Names()
		if len(names) == 0 {
			continue
		}
		usage := catalyst + names[0]
		if len(h.Params) > 0 {
			usage += " " + strings.TrimSuffix(h.Params.Usage(), ".")
		}
		desc := h.Description
		if desc == "" {
			desc = "No description"
		}
		line := fmt.Sprintf("%s - %s", usage, desc)
		if len(names) > 1 {
			line += fmt.Sprintf(" (aliases: %s)", strings.Join(names[1:], ", "))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
