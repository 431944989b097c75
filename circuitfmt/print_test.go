package circuitfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DM-3/sequential-logic-solver/logic"
)

func TestGate_WidthFiveRightAligned(t *testing.T) {
	got := Gate(logic.Gate{InputMask: 3, Mode: logic.ModeAnd})
	assert.Equal(t, "    3_AND ", got)
}

func TestGate_WideMask(t *testing.T) {
	got := Gate(logic.Gate{InputMask: 12345, Mode: logic.ModeXor})
	assert.Equal(t, "12345_XOR ", got)
}

func TestLayer_TabSeparatedBracketed(t *testing.T) {
	layer := logic.Layer{Gates: []logic.Gate{
		{InputMask: 1, Mode: logic.ModeAnd},
		{InputMask: 2, Mode: logic.ModeOr},
	}}
	got := Layer(layer)
	assert.True(t, strings.HasPrefix(got, "[ "))
	assert.True(t, strings.HasSuffix(got, "]"))
	assert.Contains(t, got, "\t")
}

func TestFormat_OneLinePerLayerLabeled(t *testing.T) {
	circuit := logic.Circuit{Layers: []logic.Layer{
		{Gates: []logic.Gate{{Mode: logic.ModeIn}}},
		{Gates: []logic.Gate{{InputMask: 1, Mode: logic.ModeAnd}}},
	}}
	got := Format(circuit)
	assert.Contains(t, got, "circuit:\n")
	assert.Contains(t, got, " layer 0: \t")
	assert.Contains(t, got, " layer 1: \t")
	assert.True(t, strings.HasSuffix(got, "\n\n"))
}
