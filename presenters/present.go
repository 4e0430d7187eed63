// Package presenters resolves and constructs the presenter wrapper for a domain object.
//
// The view layer asks for a subject to be presented,
// and this package decides which presenter type wraps it:
// an explicit override wins, a subject reporting its own presenter comes next,
// and everything else falls back to the naming convention lookup in the registry.
package presenters

import (
	"fmt"
	"reflect"

	"github.com/adamluzsi/presentable"
)

// ErrNotSequence returned when PresentAll receives a subject that is not a slice or an array.
const ErrNotSequence presentable.Error = "subject is not a sequence"

// Present wraps the given subject in its resolved presenter and returns the fresh wrapper.
//
// The view handle and the options given through WithOptions are forwarded to the factory verbatim.
// When the subject is a slice or an array, every element is presented independently in original order
// and the returned presenter is the resulting List.
// When a callback is given through WithCallback, it receives each constructed wrapper
// before Present returns; for sequences that means once per element, never once for the List.
// A wrapper is constructed fresh on every call, nothing is cached.
func (r *Registry) Present(subject presentable.Subject, view presentable.View, opts ...PresentOption) (presentable.Presenter, error) {
	return r.present(subject, view, configure(opts))
}

// PresentAll wraps every element of the given slice or array subject, in original order.
//
// Overrides, view, options and the callback apply to each element the same way Present applies them
// to a single subject. A nil element resolves to Base like any other nil subject;
// only the collection itself being empty yields an empty List.
// The first failing element aborts the whole call.
func (r *Registry) PresentAll(subjects presentable.Subject, view presentable.View, opts ...PresentOption) (List, error) {
	if !isSequence(subjects) {
		return nil, fmt.Errorf(`%T: %w`, subjects, ErrNotSequence)
	}
	return r.presentAll(subjects, view, configure(opts))
}

// Present wraps the subject using the package level registry.
func Present(subject presentable.Subject, view presentable.View, opts ...PresentOption) (presentable.Presenter, error) {
	return registry.Present(subject, view, opts...)
}

// PresentAll wraps every element of the sequence subject using the package level registry.
func PresentAll(subjects presentable.Subject, view presentable.View, opts ...PresentOption) (List, error) {
	return registry.PresentAll(subjects, view, opts...)
}

func (r *Registry) present(subject presentable.Subject, view presentable.View, c presentConfig) (presentable.Presenter, error) {
	if isSequence(subject) {
		list, err := r.presentAll(subject, view, c)
		if err != nil {
			return nil, err
		}
		return list, nil
	}

	factory := c.factory

	if factory == nil {
		var err error
		factory, err = r.Resolve(subject)
		if err != nil {
			return nil, err
		}
	}

	p, err := factory(subject, view, c.options)
	if err != nil {
		return nil, err
	}

	if c.callback != nil {
		c.callback(p)
	}

	return p, nil
}

func (r *Registry) presentAll(subjects presentable.Subject, view presentable.View, c presentConfig) (List, error) {
	v := reflect.ValueOf(subjects)

	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	list := make(List, 0, v.Len())

	for i := 0; i < v.Len(); i++ {
		p, err := r.present(v.Index(i).Interface(), view, c)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}

	return list, nil
}

// isSequence reports whether the subject fans out to per element presentation.
// Strings and byte slices count as scalar subjects, not as sequences.
func isSequence(subject presentable.Subject) bool {
	if subject == nil {
		return false
	}

	v := reflect.ValueOf(subject)

	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v.Type().Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}
