package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"smithwagnercv/domain/core"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsCodeAndCause(t *testing.T) {
	base := ConfigInvalid("bad value")
	wrapped := Wrap(base, "loading")

	assert.Equal(t, CodeConfigInvalid, GetCode(wrapped))
	assert.True(t, stderrors.Is(wrapped, base))
	assert.Equal(t, "loading: bad value", wrapped.Error())
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestWrap_ClassifiesParameterErrors(t *testing.T) {
	err := Wrap(core.NewParameterError(core.ErrMu, "must be within [0, 1]", 2.0), "grid")
	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.ErrorIs(t, err, core.ErrMu)

	err = Wrap(fmt.Errorf("disk full"), "grid")
	assert.Equal(t, CodeInternalError, GetCode(err))
}

func TestSimulationError(t *testing.T) {
	err := SimulationError("run failed", core.ErrNumOptions)
	assert.Equal(t, CodeInvalidInput, err.Code)

	err = SimulationError("run failed", fmt.Errorf("boom"))
	assert.Equal(t, CodeSimulationError, err.Code)
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeExportError, fmt.Errorf("permission denied"))
	assert.Equal(t, CodeExportError, GetCode(err))
	assert.True(t, IsAppError(err))
	assert.False(t, IsAppError(fmt.Errorf("plain")))
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
}

func TestExportError(t *testing.T) {
	err := ExportError("out/gammaResults.csv", fmt.Errorf("no space"))
	assert.Equal(t, "export to out/gammaResults.csv failed: no space", err.Error())
}
