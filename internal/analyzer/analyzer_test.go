package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	// Digits are discarded, the hyphen splits tokens.
	assert.Equal(t, []string{"привет", "мир"}, Analyze("Привет, мир-2024!"))
}

func TestAnalyzeMixedCase(t *testing.T) {
	assert.Equal(t, []string{"росс", "и", "сша"}, Analyze("Россия и США"))
	assert.Equal(t, []string{"экономик", "росс", "растёт"}, Analyze("экономика России растёт"))
}

func TestAnalyzeEmpty(t *testing.T) {
	assert.Empty(t, Analyze(""))
	assert.Empty(t, Analyze("   \t  "))
	assert.Empty(t, Analyze("2024 -- 42"))
}

func TestAnalyzeDeterministic(t *testing.T) {
	const text = "путин встретил медведева"
	first := Analyze(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Analyze(text))
	}
}

func TestAnalyzeHyphenSplits(t *testing.T) {
	// No hyphen joining: each side is analyzed on its own.
	got := Analyze("кот-собака")
	assert.Equal(t, []string{"кот", "собак"}, got)
}
