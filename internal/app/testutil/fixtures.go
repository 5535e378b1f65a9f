package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SingleSpeakerTranscript provides a sample model response where every
// line carries the same speaker label.
const SingleSpeakerTranscript = "Speaker 1: Welcome to the show.\nSpeaker 1: Today we talk about transcription."

// MultiSpeakerTranscript provides a sample model response with two
// distinct speakers.
const MultiSpeakerTranscript = "**Speaker 1:** Welcome to the show.\n**Speaker 2:** Thanks for having me."

// BoilerplateTranscript provides a sample model response wrapped in the
// lead-in phrasing models sometimes add before the actual transcript.
const BoilerplateTranscript = "Okay, here is the transcription:\nWelcome to our podcast. Today we're discussing artificial intelligence."

// TestTranscriptionTexts provides sample transcription texts for testing
var TestTranscriptionTexts = []string{
	"Welcome to our podcast. Today we're discussing artificial intelligence.",
	"In this episode, we explore the impact of automation on modern businesses.",
	"Today we have an exclusive interview with the CEO of TechCorp.",
	"This is a short audio clip used for testing purposes.",
}

// WriteAudioFile writes payload to dir/name and returns the full path.
// The payload only needs to look like bytes; nothing decodes it.
func WriteAudioFile(t *testing.T, dir, name string, payload []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write audio fixture %s: %v", path, err)
	}
	return path
}

// WriteDefaultAudioFile writes a small mp3-named fixture into dir.
func WriteDefaultAudioFile(t *testing.T, dir string) string {
	t.Helper()
	return WriteAudioFile(t, dir, "recording.mp3", []byte("fake-mp3-audio-bytes"))
}
