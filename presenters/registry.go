package presenters

import (
	"fmt"
	"sync"

	"github.com/adamluzsi/presentable"
	"github.com/adamluzsi/presentable/reflects"
)

// ErrNotFound returned when the conventional presenter name is not registered.
// The resolution never substitutes a default on a failed lookup.
const ErrNotFound presentable.Error = "presenter not found"

// NameSuffix is appended to the subject's base type name to form the conventional presenter name.
//	Order -> OrderPresenter
const NameSuffix = `Presenter`

// LookupName returns the conventional presenter name for the given subject.
func LookupName(subject presentable.Subject) string {
	return reflects.Name(subject) + NameSuffix
}

// Registry maps conventional presenter names to the factories that construct them.
//
// Populate it during process start, usually from the init function of the package
// that defines the concrete presenter types.
// Registration and resolution are safe for concurrent use.
type Registry struct {
	mutex     sync.RWMutex
	factories map[string]presentable.Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]presentable.Factory)}
}

// Register binds a factory to a conventional presenter name.
// Registering the same name again replaces the previous factory.
func (r *Registry) Register(name string, factory presentable.Factory) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.factories[name] = factory
}

// LookupFactory returns the factory registered under the given name.
func (r *Registry) LookupFactory(name string) (presentable.Factory, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	factory, ok := r.factories[name]
	return factory, ok
}

// Resolve determines the factory for the given subject.
//
// A nil subject resolves to BaseFactory.
// A subject that implements presentable.SelfPresenting resolves to its own reported factory,
// even when a conventionally named factory is also registered.
// Every other subject resolves through the naming convention,
// and an unregistered conventional name fails with ErrNotFound.
func (r *Registry) Resolve(subject presentable.Subject) (presentable.Factory, error) {
	if subject == nil {
		return BaseFactory, nil
	}

	if sp, ok := subject.(presentable.SelfPresenting); ok {
		return sp.PresenterFactory(), nil
	}

	name := LookupName(subject)

	factory, ok := r.LookupFactory(name)
	if !ok {
		return nil, fmt.Errorf(`%s: %w`, name, ErrNotFound)
	}

	return factory, nil
}

var registry = NewRegistry()

// DefaultRegistry returns the package level registry used by the top level Present functions.
func DefaultRegistry() *Registry { return registry }

// Register binds a factory to a conventional presenter name in the package level registry.
func Register(name string, factory presentable.Factory) {
	registry.Register(name, factory)
}
