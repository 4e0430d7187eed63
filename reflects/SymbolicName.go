package reflects

import (
	"fmt"
	"path/filepath"

	"github.com/adamluzsi/presentable"
)

// SymbolicName returns the package qualified type name of the subject.
func SymbolicName(s presentable.Subject) string {
	t := BaseTypeOf(s)

	if t.PkgPath() == "" {
		return fmt.Sprintf("%s", t.Name())
	}

	return fmt.Sprintf("%s.%s", filepath.Base(t.PkgPath()), t.Name())
}
