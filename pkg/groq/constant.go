package groq

import "time"

const (
	// DefaultBaseURL is the Groq OpenAI-compatible API root.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the chat model used for extraction.
	DefaultModel = "llama-3.3-70b-versatile"

	// DefaultWhisperModel is the audio transcription model.
	DefaultWhisperModel = "whisper-large-v3"

	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 60 * time.Second
)
