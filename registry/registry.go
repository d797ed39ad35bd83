// Package registry is the set of currently displayed components, addressable
// by slot. Handlers rebuild a component and replace its slot; the layout
// never changes shape.
package registry

// Slot identifies one fixed position in the layout.
type Slot string

// Component is anything that can render itself into the layout.
type Component interface {
	View() string
}

// Rendered is a pre-rendered component: handlers that build their whole view
// up front can store the string directly.
type Rendered string

func (r Rendered) View() string { return string(r) }

// Registry maps slots to their current components. Slots are statically
// known, so Replace always succeeds and Get on an unfilled slot returns an
// empty component rather than an error.
type Registry struct {
	slots map[Slot]Component
}

func New() *Registry {
	return &Registry{slots: make(map[Slot]Component)}
}

// Replace swaps in the new component for the slot. Idempotent; replacing
// with the same component is harmless.
func (r *Registry) Replace(slot Slot, c Component) {
	r.slots[slot] = c
}

// Get returns the component currently in the slot, or an empty one.
func (r *Registry) Get(slot Slot) Component {
	if c, ok := r.slots[slot]; ok && c != nil {
		return c
	}
	return Rendered("")
}
