package artgen

import (
	stderrors "errors"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/KirkDiggler/creature-forge/internal/errors"
)

// Messages shown to the creator when the models refuse or fail
const (
	MessageBusy    = "The art studio is busy right now. Please try again in a minute!"
	MessageUnsafe  = "The art studio can't draw that one. Try changing your description a little and ask again!"
	MessageOffline = "The art studio isn't answering right now. Your creature is safe, so try again soon."
)

// translateError maps backend failures onto error codes with a message a
// child can read. Nothing is retried here.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !stderrors.As(err, &apiErr) {
		var ptr *genai.APIError
		if stderrors.As(err, &ptr) && ptr != nil {
			apiErr = *ptr
		} else {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "image service request failed").
				WithUserMessage(MessageOffline)
		}
	}

	status := strings.ToUpper(apiErr.Status)
	message := strings.ToLower(apiErr.Message)

	switch {
	case apiErr.Code == http.StatusTooManyRequests || strings.Contains(status, "RESOURCE_EXHAUSTED") ||
		strings.Contains(message, "quota"):
		return errors.WrapWithCode(err, errors.CodeResourceExhausted, "image service rate limited").
			WithMeta("backend_code", apiErr.Code).
			WithUserMessage(MessageBusy)
	case strings.Contains(message, "safety") || strings.Contains(message, "blocked") ||
		strings.Contains(message, "responsible ai"):
		return errors.WrapWithCode(err, errors.CodeFailedPrecondition, "image service refused the content").
			WithMeta("backend_code", apiErr.Code).
			WithUserMessage(MessageUnsafe)
	case apiErr.Code == http.StatusBadRequest:
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "image service rejected the request").
			WithMeta("backend_code", apiErr.Code).
			WithUserMessage(MessageOffline)
	default:
		return errors.WrapWithCode(err, errors.CodeUnavailable, "image service unavailable").
			WithMeta("backend_code", apiErr.Code).
			WithUserMessage(MessageOffline)
	}
}

func safetyError(step string) error {
	return errors.FailedPreconditionf("%s blocked by safety filter", step).
		WithMeta("reason", "safety").
		WithUserMessage(MessageUnsafe)
}

// PublicURL turns a gs:// storage URI into its public HTTPS form. Other
// URLs are returned unchanged.
func PublicURL(uri string) string {
	if rest, ok := strings.CutPrefix(uri, "gs://"); ok {
		return "https://storage.googleapis.com/" + rest
	}
	return uri
}
