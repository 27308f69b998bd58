package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeckError_MessageFormat(t *testing.T) {
	err := New(CategoryDiscovery, SeverityFatal, "boom")
	require.Equal(t, "discovery (fatal): boom", err.Error())

	wrapped := Wrap(os.ErrNotExist, CategoryAssembly, SeverityFatal, "read failed")
	require.Contains(t, wrapped.Error(), "assembly (fatal): read failed")
	require.Contains(t, wrapped.Error(), os.ErrNotExist.Error())
}

func TestDeckError_UnwrapSupportsErrorsIs(t *testing.T) {
	err := ReadError("/tmp/x.md", os.ErrPermission)
	require.True(t, stderrors.Is(err, os.ErrPermission))
}

func TestDeckError_CategoryAndSeverityHelpers(t *testing.T) {
	require.True(t, IsCategory(NotADirectory("/tmp"), CategoryDiscovery))
	require.False(t, IsCategory(NotADirectory("/tmp"), CategoryConfig))
	require.Equal(t, CategoryInternal, GetCategory(fmt.Errorf("plain")))

	require.True(t, IsFatal(MissingSlideFile("a.md", "/tmp/a.md")))
	require.False(t, IsFatal(EmptyDirectory("/tmp")))
	require.True(t, IsFatal(fmt.Errorf("plain errors are fatal")))
}

func TestDeckError_ContextFields(t *testing.T) {
	err := TemplateMissingPlaceholder("{{ slides }}")
	require.Equal(t, "{{ slides }}", err.Context["token"])

	err = err.WithContext("template", "/tmp/t.html")
	require.Equal(t, "/tmp/t.html", err.Context["template"])
}
