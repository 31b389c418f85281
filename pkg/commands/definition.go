package commands

// ReturnKind says whether a handler's text result is shown to the caller.
type ReturnKind int

const (
	ReturnNone ReturnKind = iota
	ReturnString
)

// Handler is invoked with the owner instance it was registered under and the
// coerced arguments, one per param of the definition's shape.
type Handler func(owner Owner, args Args) (string, error)

type Definition struct {
	Name        string
	Aliases     []string
	Description string
	Params      Shape
	Returns     ReturnKind
	Handler     Handler
}

// Names returns Name followed by every alias.
func (d Definition) Names() []string {
	names := make([]string, 0, len(d.Aliases)+1)
	if d.Name != "" {
		names = append(names, d.Name)
	}
	return append(names, d.Aliases...)
}

// Owner groups the commands of one provider object.
type Owner interface {
	Commands() []Definition
}

// Identifier lets an owner pick the identity it registers under. Owners
// that do not implement it are keyed by their dynamic type.
type Identifier interface {
	OwnerID() string
}

// Executor turns a raw input line into a reply.
type Executor interface {
	Execute(line string) string
}
