package fixtures_test

import (
	"testing"
	"time"

	"github.com/adamluzsi/presentable/fixtures"
	"github.com/stretchr/testify/require"
)

type ExampleStruct struct {
	Name      string
	Count     int
	Enabled   bool
	CreatedAt time.Time
	Tags      []string
	Inner     InnerStruct
}

type InnerStruct struct {
	Value string
}

func TestNew_ReturnsPopulatedStruct(t *testing.T) {
	t.Parallel()

	s := fixtures.New(ExampleStruct{}).(*ExampleStruct)

	require.NotZero(t, s.Name)
	require.NotZero(t, s.CreatedAt)
	require.NotZero(t, s.Inner.Value)
	require.NotNil(t, s.Tags)
}

func TestNew_PointerSubjectGiven_BaseTypePopulated(t *testing.T) {
	t.Parallel()

	s := fixtures.New(&ExampleStruct{}).(*ExampleStruct)

	require.NotZero(t, s.Name)
}

func TestNew_EachCallIsIndependent(t *testing.T) {
	t.Parallel()

	s1 := fixtures.New(ExampleStruct{}).(*ExampleStruct)
	s2 := fixtures.New(ExampleStruct{}).(*ExampleStruct)

	require.False(t, s1 == s2)
}
