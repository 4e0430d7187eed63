package presenters_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/presentable"
	"github.com/adamluzsi/presentable/presenters"
)

var _ presentable.Presenter = &presenters.Mock{}

func TestMockFactory(t *testing.T) {
	t.Parallel()

	mf := presenters.NewMockFactory()
	view := &ViewStub{Name: `mock`}
	opts := presentable.Options{`key`: `value`}

	p, err := mf.Factory()(Order{ID: `o-1`}, view, opts)
	require.NoError(t, err)

	require.Equal(t, 1, mf.ConstructionCount())
	require.True(t, p.(*presenters.Mock) == mf.LastConstructed())

	m := mf.LastConstructed()
	require.Equal(t, Order{ID: `o-1`}, m.ConstructedWithSubject)
	require.Equal(t, Order{ID: `o-1`}, m.Subject())
	require.True(t, m.ConstructedWithView == presentable.View(view))
	require.Equal(t, opts, m.ConstructedWithOptions)
}

func TestMockFactory_ReturnErrorSet_ConstructionFails(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New(`Boom!`)
	mf := &presenters.MockFactory{ReturnError: expectedErr}

	_, err := mf.Factory()(Order{}, nil, nil)
	require.Equal(t, expectedErr, err)
	require.Equal(t, 0, mf.ConstructionCount())
}
