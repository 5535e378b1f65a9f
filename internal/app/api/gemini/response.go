package gemini

import (
	"context"
	stderrors "errors"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"gemini-transcribe/internal/app/errors"
)

// isBlockedFinish reports whether the finish reason means the model
// refused to transcribe rather than failed.
func isBlockedFinish(reason genai.FinishReason) bool {
	switch reason {
	case genai.FinishReasonSafety,
		genai.FinishReasonBlocklist,
		genai.FinishReasonProhibitedContent,
		genai.FinishReasonSPII:
		return true
	default:
		return false
	}
}

// blockedError inspects a response for safety blocks. A nil return means
// the response carries usable content parts.
func (t *Transcriber) blockedError(response *genai.GenerateContentResponse) error {
	if response == nil {
		return errors.NewContentBlockedError("model returned an empty response")
	}

	if fb := response.PromptFeedback; fb != nil && fb.BlockReason != "" && fb.BlockReason != genai.BlockedReasonUnspecified {
		t.logSafetyRatings(fb.SafetyRatings)
		return errors.Newf(errors.KindContentBlocked, "transcription blocked by safety filter (%s)", fb.BlockReason)
	}

	if len(response.Candidates) == 0 {
		return errors.NewContentBlockedError("model returned no candidates")
	}

	candidate := response.Candidates[0]
	if isBlockedFinish(candidate.FinishReason) {
		t.logSafetyRatings(candidate.SafetyRatings)
		return errors.Newf(errors.KindContentBlocked, "transcription blocked by safety filter (%s)", candidate.FinishReason)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		t.logSafetyRatings(candidate.SafetyRatings)
		return errors.NewContentBlockedError("model returned no content")
	}

	return nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(response *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

func (t *Transcriber) logSafetyRatings(ratings []*genai.SafetyRating) {
	for _, rating := range ratings {
		if rating == nil {
			continue
		}
		t.logger.Warn("safety rating",
			zap.String("category", string(rating.Category)),
			zap.String("probability", string(rating.Probability)),
			zap.Bool("blocked", rating.Blocked))
	}
}

// classifyAPIError maps SDK and network failures onto the error
// taxonomy: credential problems become auth errors, everything else
// that failed in transit becomes a transport error.
func classifyAPIError(err error) error {
	var apiErr genai.APIError
	if stderrors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 401 || apiErr.Code == 403:
			return errors.Wrap(err, errors.KindAuth, "Gemini API rejected the API key")
		case apiErr.Code == 400 && looksLikeKeyError(apiErr.Message):
			// invalid keys surface as 400 INVALID_ARGUMENT
			return errors.Wrap(err, errors.KindAuth, "Gemini API rejected the API key")
		default:
			return errors.Wrapf(err, errors.KindTransport, "Gemini API request failed (%d %s)", apiErr.Code, apiErr.Status)
		}
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, errors.KindTransport, "Gemini API request timed out")
	}

	if looksLikeAuthError(err.Error()) {
		return errors.Wrap(err, errors.KindAuth, "Gemini API rejected the API key")
	}

	return errors.Wrap(err, errors.KindTransport, "Gemini API request failed")
}

func looksLikeKeyError(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "api key") || strings.Contains(lower, "api_key")
}

func looksLikeAuthError(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "unauthenticated") ||
		strings.Contains(lower, "permission denied") ||
		strings.Contains(lower, "api key not valid") ||
		strings.Contains(lower, "401") ||
		strings.Contains(lower, "403")
}
