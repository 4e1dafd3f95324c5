package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorKeepsSentinel(t *testing.T) {
	err := WrapError(ErrUnclosedDelimiter, EUNCLOSED, "unclosed %q", "(")
	assert.True(t, errors.Is(err, ErrUnclosedDelimiter))
	assert.False(t, errors.Is(err, ErrUnbalancedDelimiter))
	assert.Equal(t, EUNCLOSED, Code(err))
	assert.Equal(t, `unclosed "("`, UserMessage(err))
	assert.Equal(t, `[132] unclosed delimiter: unclosed "("`, err.Error())
}

func TestCodeThroughWrapping(t *testing.T) {
	inner := WrapError(ErrUnknownPlugin, EUNKNOWNPLUGIN, "plugin %q not registered", "klingon")
	outer := fmt.Errorf("building parser: %w", inner)
	assert.Equal(t, EUNKNOWNPLUGIN, Code(outer))
	assert.True(t, errors.Is(outer, ErrUnknownPlugin))
}

func TestPlainErrors(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	err := errors.New("boom")
	assert.Equal(t, EINTERNAL, Code(err))
	assert.Equal(t, "internal error", UserMessage(err))
}

func TestErrorWithCode(t *testing.T) {
	err := ErrorWithCode(nil, ETOODEEP)
	assert.Equal(t, ETOODEEP, Code(err))
	assert.Equal(t, "[135] too deeply nested", err.Error())
}

func TestUserErrorPrefersUserMessage(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stderr := os.Stderr
	os.Stderr = w
	UserError(WrapError(ErrUnclosedDelimiter, EUNCLOSED, "unclosed %q", "("))
	UserError(errors.New("boom"))
	os.Stderr = stderr
	w.Close()
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "[132] unclosed \"(\"\nError: boom\n", string(out))
}
