package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	sugar, err := NewLogger()
	require.NoError(t, err)
	require.NotNil(t, sugar)
	require.Empty(t, sugar.Desugar().Name())

	sugar.Infow("logger ready", "test", t.Name())
}
