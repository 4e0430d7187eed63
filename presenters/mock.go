package presenters

import "github.com/adamluzsi/presentable"

// Mock is a presenter double that records what it was constructed with.
type Mock struct {
	ConstructedWithSubject presentable.Subject
	ConstructedWithView    presentable.View
	ConstructedWithOptions presentable.Options
}

// Subject returns the subject the mock was constructed with.
func (m *Mock) Subject() presentable.Subject { return m.ConstructedWithSubject }

func NewMockFactory() *MockFactory {
	return &MockFactory{}
}

// MockFactory produces Mock presenters and records every construction it performed.
// When ReturnError is set, construction fails with it instead.
type MockFactory struct {
	ReturnError error
	Constructed []*Mock
}

// Factory returns the presentable.Factory backed by this mock.
func (f *MockFactory) Factory() presentable.Factory {
	return func(subject presentable.Subject, view presentable.View, opts presentable.Options) (presentable.Presenter, error) {
		if f.ReturnError != nil {
			return nil, f.ReturnError
		}

		m := &Mock{
			ConstructedWithSubject: subject,
			ConstructedWithView:    view,
			ConstructedWithOptions: opts,
		}
		f.Constructed = append(f.Constructed, m)
		return m, nil
	}
}

// ConstructionCount returns how many presenters this factory constructed.
func (f *MockFactory) ConstructionCount() int { return len(f.Constructed) }

// LastConstructed returns the most recently constructed mock presenter.
func (f *MockFactory) LastConstructed() *Mock {
	return f.Constructed[len(f.Constructed)-1]
}
