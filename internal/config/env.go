package config

import "os"

const defaultGeminiModel = "gemini-2.5-flash"

func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func GeminiModel() string {
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		return model
	}
	return defaultGeminiModel
}
