package presenters_test

import (
	"fmt"

	"github.com/adamluzsi/presentable"
	"github.com/adamluzsi/presentable/presenters"
)

// Order is the plain domain structure used by the specs,
// it relies on the naming convention for resolution.
type Order struct {
	ID    string
	Total int
}

type OrderPresenter struct {
	*presenters.Base
}

func (p *OrderPresenter) FormattedTotal() string {
	return fmt.Sprintf("$%d", p.Subject().(Order).Total)
}

func OrderPresenterFactory(subject presentable.Subject, view presentable.View, opts presentable.Options) (presentable.Presenter, error) {
	return &OrderPresenter{Base: presenters.NewBase(subject, view, opts)}, nil
}

// Note reports its own presenter, so the naming convention must never apply to it.
type Note struct {
	Body string
}

func (Note) PresenterFactory() presentable.Factory {
	return NotePresenterFactory
}

type NotePresenter struct {
	*presenters.Base
}

func NotePresenterFactory(subject presentable.Subject, view presentable.View, opts presentable.Options) (presentable.Presenter, error) {
	return &NotePresenter{Base: presenters.NewBase(subject, view, opts)}, nil
}

// ViewStub stands in for the opaque rendering environment handle.
type ViewStub struct {
	Name string
}
