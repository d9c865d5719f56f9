package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelSizeValid(t *testing.T) {
	for _, s := range []ModelSize{ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge} {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	assert.False(t, ModelSize("huge").Valid())
	assert.False(t, ModelSize("").Valid())
}

func TestCredentialsEmpty(t *testing.T) {
	assert.True(t, Credentials{}.Empty())
	assert.False(t, Credentials{GeminiKey: "k"}.Empty())
	assert.False(t, Credentials{MistralKey: "k"}.Empty())
}

func TestProcessingRequestHasInput(t *testing.T) {
	assert.False(t, ProcessingRequest{}.HasInput())
	assert.True(t, ProcessingRequest{VideoPath: "a.mp4"}.HasInput())
	assert.True(t, ProcessingRequest{PDFPath: "a.pdf"}.HasInput())
}

func TestFFProbeOutputParsing(t *testing.T) {
	raw := `{"streams":[{"codec_type":"audio","codec_name":"pcm_s16le","sample_rate":"16000","channels":1}]}`

	var out FFProbeOutput
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	require.Len(t, out.Streams, 1)
	assert.Equal(t, "audio", out.Streams[0].CodecType)
	assert.Equal(t, 16000, out.Streams[0].SampleRate)
	assert.Equal(t, 1, out.Streams[0].Channels)
}
