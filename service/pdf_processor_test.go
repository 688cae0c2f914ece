package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMineContentTextShowOperator(t *testing.T) {
	content := "BT /F1 12 Tf (Customer Name: ACME LTD) Tj ET (   ) Tj"

	assert.Equal(t, "Customer Name: ACME LTD\n", mineContentText(content))
}

func TestMineContentTextArrayOperator(t *testing.T) {
	content := "BT [(Net Va)-20(lue: 100,000)] TJ ET"

	assert.Equal(t, "Net Value: 100,000\n", mineContentText(content))
}

func TestMineContentTextUnescapesLiterals(t *testing.T) {
	content := `(BRAKE \(HEAVY\) DRUM) Tj`

	assert.Equal(t, "BRAKE (HEAVY) DRUM\n", mineContentText(content))
}

func TestMineContentTextEmptyStream(t *testing.T) {
	assert.Equal(t, "", mineContentText("q 1 0 0 1 0 0 cm Q"))
}
