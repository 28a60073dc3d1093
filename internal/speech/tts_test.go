package speech

import (
	"context"
	"testing"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/stretchr/testify/assert"
)

func TestVoiceLanguage(t *testing.T) {
	assert.Equal(t, "hi-IN", VoiceLanguage("hi"))
	assert.Equal(t, "mr-IN", VoiceLanguage("MR"))
	assert.Equal(t, "en-US", VoiceLanguage("en"))
	assert.Equal(t, "en-US", VoiceLanguage("fr"))
	assert.Equal(t, "en-US", VoiceLanguage(""))
}

func TestNewSynthesizeRequest(t *testing.T) {
	req := NewSynthesizeRequest("Your liver enzyme is raised.", "ta")
	assert.Equal(t, "Your liver enzyme is raised.", req.GetInput().GetText())
	assert.Equal(t, "ta-IN", req.GetVoice().GetLanguageCode())
	assert.Equal(t, texttospeechpb.AudioEncoding_MP3, req.GetAudioConfig().GetAudioEncoding())
}

func TestDisabled(t *testing.T) {
	var n Narrator = Disabled{}
	_, err := n.Narrate(context.Background(), "hello", "en")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.NoError(t, n.Close())
}
