package errors

const (
	metaUserMessage      = "user_message"
	metaValidationErrors = "validation_errors"
)

const defaultUserMessage = "Something went wrong. Your work is still here, so try again."

// UserMessage returns a short, friendly sentence describing err for display
// in a dismissible banner. A message attached with WithUserMessage beats the
// default for the code.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg, ok := GetMeta(err)[metaUserMessage].(string); ok && msg != "" {
		return msg
	}
	if banner := codeTable[GetCode(err)].banner; banner != "" {
		return banner
	}
	return defaultUserMessage
}
