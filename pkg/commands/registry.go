package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/sipeed/picocmd/pkg/logger"
)

// OwnerID identifies a registered owner.
type OwnerID string

// RegisteredHandler is a definition as stored by a Registry. Its pointer
// identity is what OwnerOf looks up.
type RegisteredHandler struct {
	Definition
}

// Registry maps owners to their instances and handlers. It is filled during
// start-up and read during dispatch; it does no locking.
type Registry struct {
	order     []OwnerID
	instances map[OwnerID]Owner
	handlers  map[OwnerID][]*RegisteredHandler
}

func NewRegistry() *Registry {
	return &Registry{
		instances: make(map[OwnerID]Owner),
		handlers:  make(map[OwnerID][]*RegisteredHandler),
	}
}

func identityOf(owner Owner) OwnerID {
	if id, ok := owner.(Identifier); ok {
		return OwnerID(id.OwnerID())
	}
	return OwnerID(fmt.Sprintf("%T", owner))
}

// Register stores owner under its identity and appends its commands.
// Registering the same identity again replaces the instance and appends the
// commands a second time.
func (r *Registry) Register(owner Owner) OwnerID {
	id := identityOf(owner)
	if _, seen := r.instances[id]; !seen {
		r.order = append(r.order, id)
	}
	r.instances[id] = owner

	defs := owner.Commands()
	for _, def := range defs {
		r.handlers[id] = append(r.handlers[id], &RegisteredHandler{Definition: def})
	}

	logger.DebugCF("commands", "Registered owner", map[string]any{
		"owner":    string(id),
		"commands": len(defs),
	})
	return id
}

// Resolve finds the first handler, in registration order, that answers to
// alias. Matching ignores case.
func (r *Registry) Resolve(alias string) (*RegisteredHandler, bool) {
	for _, h := range r.Handlers() {
		for _, name := range h.Names() {
			if strings.EqualFold(name, alias) {
				return h, true
			}
		}
	}
	return nil, false
}

// OwnerOf finds the owner h was registered under by searching the handler
// lists, so a handler that is not in the registry has no owner.
func (r *Registry) OwnerOf(h *RegisteredHandler) (OwnerID, bool) {
	for id, list := range r.handlers {
		for _, candidate := range list {
			if candidate == h {
				return id, true
			}
		}
	}
	return "", false
}

func (r *Registry) InstanceFor(id OwnerID) (Owner, error) {
	inst, ok := r.instances[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
	}
	return inst, nil
}

// Handlers lists every registered handler in registration order.
func (r *Registry) Handlers() []*RegisteredHandler {
	var out []*RegisteredHandler
	for _, id := range r.order {
		out = append(out, r.handlers[id]...)
	}
	return out
}

// Suggest returns registered aliases close to alias, best match first.
func (r *Registry) Suggest(alias string) []string {
	var names []string
	seen := map[string]bool{}
	for _, h := range r.Handlers() {
		for _, name := range h.Names() {
			if !seen[strings.ToLower(name)] {
				seen[strings.ToLower(name)] = true
				names = append(names, name)
			}
		}
	}

	ranks := fuzzy.RankFindFold(alias, names)
	sort.Sort(ranks)
	out := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, rank.Target)
	}
	return out
}
