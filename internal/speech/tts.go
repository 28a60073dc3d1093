/**
* Name: 			tts.go
* Description: 		분석 결과 설명문 음성 변환 (Google Cloud TTS)
* Workflow: 		언어 코드 -> 음성 선택, 텍스트 전송, MP3 수신
 */

package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// ErrDisabled is returned by the no-op narrator.
var ErrDisabled = errors.New("speech: narration is not configured")

// Narrator turns explanation text into MP3 audio.
type Narrator interface {
	Narrate(ctx context.Context, text, language string) ([]byte, error)
	Close() error
}

// 앱 언어 코드 -> TTS 음성 언어 코드
var voiceLanguages = map[string]string{
	"en": "en-US",
	"hi": "hi-IN",
	"bn": "bn-IN",
	"ta": "ta-IN",
	"te": "te-IN",
	"mr": "mr-IN",
}

// VoiceLanguage maps an app language code to a TTS locale, en-US when unknown.
func VoiceLanguage(language string) string {
	if v, ok := voiceLanguages[strings.ToLower(language)]; ok {
		return v
	}
	return "en-US"
}

// NewSynthesizeRequest builds the TTS request for text in language.
func NewSynthesizeRequest(text, language string) *texttospeechpb.SynthesizeSpeechRequest {
	return &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: VoiceLanguage(language),
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}
}

// TTS 연결 정보
type GoogleNarrator struct {
	client *texttospeech.Client
}

// NewGoogleNarrator uses credentialsFile when set, else application default
// credentials.
func NewGoogleNarrator(ctx context.Context, credentialsFile string) (*GoogleNarrator, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewGoogleNarrator(): failed to create TTS client: %w", err)
	}
	return &GoogleNarrator{client: client}, nil
}

func (g *GoogleNarrator) Narrate(ctx context.Context, text, language string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("speech: nothing to narrate")
	}
	resp, err := g.client.SynthesizeSpeech(ctx, NewSynthesizeRequest(text, language))
	if err != nil {
		log.Printf("Narrate(): SynthesizeSpeech failed: %v", err)
		return nil, err
	}
	log.Debugf("Narrate(): %s audio, %d bytes", VoiceLanguage(language), len(resp.AudioContent))
	return resp.AudioContent, nil
}

// TTS 클라이언트 종료
func (g *GoogleNarrator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// Disabled answers every request with ErrDisabled.
type Disabled struct{}

func (Disabled) Narrate(context.Context, string, string) ([]byte, error) { return nil, ErrDisabled }
func (Disabled) Close() error                                            { return nil }
