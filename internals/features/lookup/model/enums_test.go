package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormType(t *testing.T) {
	for _, s := range []string{"NORMAL", "ST/Q", "Q/ST"} {
		ft, err := ParseFormType(s)
		require.NoError(t, err)
		assert.Equal(t, FormType(s), ft)
	}
	_, err := ParseFormType("GRID")
	assert.Error(t, err)
}

func TestParseDefaultSource(t *testing.T) {
	for _, s := range []string{"NONE", "PREVIOUS", "QUESTION", "PS", "SUB", "CIRCLE", "PSOP"} {
		ds, err := ParseDefaultSource(s)
		require.NoError(t, err)
		assert.Equal(t, DefaultSource(s), ds)
	}
	_, err := ParseDefaultSource("previous")
	assert.Error(t, err)
}

func TestParseQuestionType(t *testing.T) {
	for _, s := range []string{"TEXT", "NUMERIC", "DATE", "BOOLEAN"} {
		qt, err := ParseQuestionType(s)
		require.NoError(t, err)
		assert.Equal(t, QuestionType(s), qt)
	}
	_, err := ParseQuestionType("INT")
	assert.Error(t, err)
}
