package audio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"deepnotes/internal/app/model"
)

// ExtractWav extracts the audio track of a video into a mono 16 kHz WAV
// file suitable for Whisper. The output lives in the OS temp dir under a
// uuid-derived name so that concurrent runs never collide. The caller
// must remove the returned path on every exit path.
func ExtractWav(videoPath string) (string, error) {
	outputPath := filepath.Join(os.TempDir(), fmt.Sprintf("deepnotes-%s.wav", uuid.NewString()))

	cmd := exec.Command("ffmpeg",
		"-i", videoPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}

	return outputPath, nil
}

// Duration returns the duration of an audio file in whole seconds.
func Duration(filePath string) (int, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(durationFloat)), nil
}

// Is16kHzMonoWav reports whether the file already matches the format the
// transcription engine expects.
func Is16kHzMonoWav(filePath string) (bool, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return false, err
	}

	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(output, &probeOutput); err != nil {
		return false, err
	}

	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 && stream.Channels == 1 {
			return true, nil
		}
	}

	return false, nil
}
