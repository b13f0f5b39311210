package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudyTask(t *testing.T) {
	task, err := NewStudyTask(StudyPayload{Topic: "carbon markets", Category: "finance", Text: "body", Mode: "quen-2.5"})
	require.NoError(t, err)
	assert.Equal(t, TypeStudyCompose, task.Type())

	p, err := DecodeStudyPayload(task.Payload())
	require.NoError(t, err)
	assert.Equal(t, "carbon markets", p.Topic)
	assert.Equal(t, "quen-2.5", p.Mode)
}

func TestNewBriefTask(t *testing.T) {
	task, err := NewBriefTask(BriefPayload{Topic: "t", Category: "c", Persona: "designer"})
	require.NoError(t, err)
	assert.Equal(t, TypeBriefCompose, task.Type())

	p, err := DecodeBriefPayload(task.Payload())
	require.NoError(t, err)
	assert.Equal(t, "designer", p.Persona)
}

func TestDecodePayload_Invalid(t *testing.T) {
	_, err := DecodeStudyPayload([]byte("not json"))
	assert.Error(t, err)

	_, err = DecodeStudyPayload([]byte(`{"topic":"only topic"}`))
	assert.Error(t, err)

	_, err = DecodeBriefPayload([]byte(`{"category":"x"}`))
	assert.Error(t, err)
}
