package presenters

import "github.com/adamluzsi/presentable"

// List is the ordered collection of wrappers produced from a sequence subject.
// It preserves the element order of the input.
type List []presentable.Presenter

// Subject implements presentable.Presenter for the whole collection,
// returning the wrapped subjects in order.
func (l List) Subject() presentable.Subject {
	subjects := make([]presentable.Subject, 0, len(l))
	for _, p := range l {
		subjects = append(subjects, p.Subject())
	}
	return subjects
}
