package footballdata

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

// buildCurlPreview renders a copy-pasteable request for debug logs with the
// auth token masked.
func buildCurlPreview(fullURL, userAgent string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}
	appendFlagHeader := func(value string) {
		appendPart("-H")
		appendPart(shellQuote(value))
	}

	appendPart("curl")
	appendPart(shellQuote(fullURL))
	appendFlagHeader("X-Auth-Token: ***")
	appendFlagHeader("User-Agent: " + userAgent)
	appendFlagHeader("Accept: application/json")

	return buf.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "'\"'\"'") + "'"
}
