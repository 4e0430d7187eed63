// Package presentable provides presenter resolution and wrapping for a web view layer.
//
// A presenter is a thin wrapper that decorates a domain object with rendering oriented behavior,
// so templates and other view code never have to reach into domain internals directly.
// This package only holds the shared vocabulary of the project;
// the resolution and construction logic itself lives in the presenters package.
package presentable

// Subject is the domain object being presented.
//
// The presentation layer imposes no requirement on the subject's shape.
// A subject may be nil, in which case it is represented by the presenters.Base wrapper.
// A subject may optionally implement SelfPresenting to take control over which presenter wraps it.
type Subject = interface{}

// View is the opaque rendering-environment handle that is forwarded unchanged
// to every presenter factory. It usually holds the template engine, the
// request scoped helpers or whatever else a concrete presenter needs for rendering.
// This package never inspects it.
type View = interface{}

// Options holds named construction options that are forwarded verbatim to the presenter factory.
// The recognized keys are defined by each concrete presenter type, not here.
type Options map[string]interface{}

// Presenter is the wrapper the view layer works with after resolution.
//
// The only contract this package imposes is that a presenter can tell what subject it wraps.
// Everything else, like the actual rendering behavior, is up to the concrete presenter type.
type Presenter interface {
	// Subject returns the domain object this presenter wraps.
	Subject() Subject
}

// Factory constructs a presenter wrapper around the given subject.
//
// Factory is the construction contract every resolvable presenter type must satisfy:
// it receives the subject, the opaque view handle and the named construction options,
// and returns the fresh wrapper or the construction failure as is.
// A Factory value also acts as the identifier of a presenter type during resolution:
// the registry maps conventional names to factories,
// and both the explicit override and the SelfPresenting capability hand back a Factory.
type Factory func(subject Subject, view View, opts Options) (Presenter, error)

// SelfPresenting is an optional capability a subject may implement
// to report its own preferred presenter, bypassing the naming convention.
type SelfPresenting interface {
	// PresenterFactory returns the factory that must be used to wrap this subject.
	PresenterFactory() Factory
}

// Error is a string based type that allows you to declare error constants for your packages.
type Error string

// Error implement the error interface, so the Error string type can be used as an error object
func (err Error) Error() string { return string(err) }
