package presenters

import "github.com/adamluzsi/presentable"

// Base is the minimal presenter, able to represent any subject including "nothing".
// Nil subjects always resolve to it. Concrete presenter types may embed it
// to inherit the construction bookkeeping.
type Base struct {
	subject presentable.Subject
	view    presentable.View
	options presentable.Options
}

func NewBase(subject presentable.Subject, view presentable.View, opts presentable.Options) *Base {
	return &Base{subject: subject, view: view, options: opts}
}

// Subject returns the domain object this presenter wraps.
func (p *Base) Subject() presentable.Subject { return p.subject }

// View returns the opaque rendering environment handle the presenter was constructed with.
func (p *Base) View() presentable.View { return p.view }

// Option returns the named construction option the presenter was constructed with.
func (p *Base) Option(name string) (interface{}, bool) {
	value, ok := p.options[name]
	return value, ok
}

// BaseFactory is the presentable.Factory of Base.
// It never fails, which makes Base safe as the resolution target of nil subjects.
func BaseFactory(subject presentable.Subject, view presentable.View, opts presentable.Options) (presentable.Presenter, error) {
	return NewBase(subject, view, opts), nil
}
