package effect

import (
	"fmt"

	"github.com/matt-g-everett/sparkle/interp"
	"github.com/matt-g-everett/sparkle/sprite"
)

// Property tweens any property of a concrete sprite type S, read and written
// through accessors supplied by the caller. The interpolation for T is chosen
// when the effect is created.
type Property[S sprite.Sprite, T any] struct {
	base
	name        string
	get         func(S) T
	set         func(S, T)
	lerp        interp.Func[T]
	from, to    T
	fromCurrent bool
	target      S
	original    T
}

// NewProperty creates a tween of the property called name between from and to.
// It fails with interp.ErrUnsupportedType if T cannot be interpolated.
func NewProperty[S sprite.Sprite, T any](name string, get func(S) T, set func(S, T), from, to T) (*Property[S, T], error) {
	lerp, err := interp.LerpFor[T]()
	if err != nil {
		return nil, fmt.Errorf("property %s: %w", name, err)
	}

	p := new(Property[S, T])
	p.name = name
	p.get = get
	p.set = set
	p.lerp = lerp
	p.from = from
	p.to = to
	return p, nil
}

// NewPropertyTo tweens from the property's value at start.
func NewPropertyTo[S sprite.Sprite, T any](name string, get func(S) T, set func(S, T), to T) (*Property[S, T], error) {
	var zero T
	p, err := NewProperty(name, get, set, zero, to)
	if err != nil {
		return nil, err
	}
	p.fromCurrent = true
	return p, nil
}

// Name of the property.
func (p *Property[S, T]) Name() string { return p.name }

func (p *Property[S, T]) Bind(s sprite.Sprite) error {
	target, ok := s.(S)
	if !ok {
		return unsupported(p, s)
	}
	if err := p.base.Bind(s); err != nil {
		return err
	}
	p.target = target
	return nil
}

func (p *Property[S, T]) Start() {
	p.original = p.get(p.target)
	if p.fromCurrent {
		p.from = p.original
	}
}

func (p *Property[S, T]) Apply(fraction float64) {
	p.set(p.target, p.lerp(p.from, p.to, p.eased(fraction)))
}

func (p *Property[S, T]) Reset() {
	p.set(p.target, p.original)
}
