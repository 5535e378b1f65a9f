package gemini

import "google.golang.org/genai"

// Model identifiers behind the user-facing aliases: "flash" favors
// speed, "pro" favors accuracy.
var modelsByAlias = map[string]string{
	"flash": "models/gemini-2.0-flash-exp",
	"pro":   "models/gemini-2.5-pro-exp-03-25",
}

const defaultModelAlias = "flash"

// ResolveModel maps a model alias to its full Gemini identifier. Unknown
// aliases resolve to the default; request validation rejects them long
// before this point.
func ResolveModel(alias string) string {
	if id, ok := modelsByAlias[alias]; ok {
		return id
	}
	return modelsByAlias[defaultModelAlias]
}

// transcriptionPrompt steers the model toward a clean plain-text
// transcript with speaker labels and no markdown decoration.
const transcriptionPrompt = `Transcribe this audio exactly in its original language. Keep length. Add paragraph spacing. Remove filler. Fix typos.

If there are multiple speakers, identify and label them as 'Speaker 1:', 'Speaker 2:', etc.

Do not include any headers, titles, or additional text - only the transcription itself. NO MARKDOWN FORMATTING!!!

When transcribing, add line breaks between different paragraphs or distinct segments of speech to improve readability.`

// safetySettings only blocks high-probability harm categories; ordinary
// speech should not be refused over a stray phrase.
func safetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
	}
}
