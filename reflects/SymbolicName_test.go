package reflects_test

import (
	"testing"

	"github.com/adamluzsi/presentable/presenters"
	"github.com/adamluzsi/presentable/reflects"
	"github.com/stretchr/testify/require"
)

func TestSymbolicName(t *testing.T) {
	t.Run("SymbolicName", func(spec *testing.T) {

		subject := reflects.SymbolicName

		spec.Run("when given object is a primitive", func(t *testing.T) {
			t.Parallel()

			require.Equal(t, `string`, subject("hello"))
		})

		spec.Run("when given struct is from different package than the current one", func(t *testing.T) {
			t.Parallel()

			o := presenters.Base{}

			require.Equal(t, `presenters.Base`, subject(o))
		})

		spec.Run("when given object is an interface", func(t *testing.T) {
			t.Parallel()

			var i InterfaceObject = &StructObject{}

			require.Equal(t, `reflects_test.StructObject`, subject(i))
		})

		spec.Run("when given object is a struct", func(t *testing.T) {
			t.Parallel()

			require.Equal(t, `reflects_test.StructObject`, subject(StructObject{}))
		})

		spec.Run("when given object is a pointer of a pointer of a struct", func(t *testing.T) {
			t.Parallel()

			o := &StructObject{}

			require.Equal(t, `reflects_test.StructObject`, subject(&o))
		})

	})
}
