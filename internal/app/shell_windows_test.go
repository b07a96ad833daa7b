//go:build windows

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeShell_ProcResolves(t *testing.T) {
	require.NoError(t, procShellExecuteW.Find())
}

func TestNativeShell_MissingFile(t *testing.T) {
	status, err := NativeShell{}.Execute(Request{
		File: `C:\this\path\does\not\exist\shopen-test.txt`,
		Show: ShowHide,
	})

	require.NoError(t, err)
	assert.False(t, status.OK())
	assert.Contains(t, []Status{StatusFileNotFound, StatusPathNotFound}, status)
}

func TestOptionalUTF16(t *testing.T) {
	p, err := optionalUTF16("")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = optionalUTF16("open")
	require.NoError(t, err)
	assert.NotNil(t, p)
}
