package bot

import "strings"

// quoteUserInput wraps user-provided text in Markdown inline code so that
// formatting characters in the input render literally instead of breaking the
// message ("can't parse entities"). Interior back-ticks are replaced with a
// single quote before wrapping.
func quoteUserInput(text string) string {
	return "`" + strings.ReplaceAll(text, "`", "'") + "`"
}

// truncateError shortens error detail destined for fallback notifications.
func truncateError(err error, limit int) string {
	detail := err.Error()
	if len(detail) > limit {
		return detail[:limit] + "..."
	}
	return detail
}
