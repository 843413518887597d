package studio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"imagestudio/internal/domain"
)

func TestTranslateRejectsBlankInput(t *testing.T) {
	remote := &fakeRemote{translateResp: "x"}
	tr, err := NewTranslator(remote, TranslatorOptions{})
	require.NoError(t, err)

	for _, text := range []string{"", " ", "\t\n  "} {
		_, err := tr.Translate(context.Background(), text)
		assert.ErrorIs(t, err, domain.ErrEmptyInput)
	}
	assert.Equal(t, 0, remote.calls())
}

func TestTranslateTrimsAndSendsInstruction(t *testing.T) {
	remote := &fakeRemote{translateResp: "\n  a sunset over the sea  "}
	tr, err := NewTranslator(remote, TranslatorOptions{})
	require.NoError(t, err)

	out, err := tr.Translate(context.Background(), "un atardecer sobre el mar")
	require.NoError(t, err)
	assert.Equal(t, "a sunset over the sea", out)

	require.Len(t, remote.translateCalls, 1)
	assert.Equal(t, "un atardecer sobre el mar", remote.translateCalls[0].Text)
	assert.Contains(t, remote.translateCalls[0].Instruction, "English")
}

func TestTranslateRemoteErrorKeepsMessage(t *testing.T) {
	remote := &fakeRemote{err: errors.New("model overloaded")}
	tr, err := NewTranslator(remote, TranslatorOptions{})
	require.NoError(t, err)

	_, err = tr.Translate(context.Background(), "hola")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteService)
	assert.Equal(t, "model overloaded", err.Error())
	assert.Equal(t, "error: model overloaded", ErrorView(err.Error()).Status)
}

func TestNewTranslatorTargetLanguage(t *testing.T) {
	tr, err := NewTranslator(&fakeRemote{}, TranslatorOptions{TargetLanguage: "ja"})
	require.NoError(t, err)
	assert.Equal(t, language.Japanese, tr.Target())
	assert.Contains(t, SystemInstruction(tr.Target()), "Japanese")

	_, err = NewTranslator(&fakeRemote{}, TranslatorOptions{TargetLanguage: "not a tag!"})
	assert.Error(t, err)

	_, err = NewTranslator(nil, TranslatorOptions{})
	assert.Error(t, err)
}
