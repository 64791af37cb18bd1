package probe

import "strings"

// Classify buckets failed verdicts into coarse error categories and counts
// failures per probe method. Working verdicts are ignored, so callers can
// pass the full verdict list.
func Classify(verdicts []*Verdict) (errorCounts, methodCounts map[string]int) {
	errorCounts = make(map[string]int)
	methodCounts = make(map[string]int)

	for _, v := range verdicts {
		if v.Working {
			continue
		}
		method := v.Method
		if method == "" {
			method = "unknown"
		}
		methodCounts[method]++
		errorCounts[categorize(v.Error)]++
	}
	return errorCounts, methodCounts
}

// categorize applies ordered substring rules; the first match wins. The
// order matters: "ffprobe not found" lands in 404/Not Found, not FFprobe
// Error, because the not-found rule runs first.
func categorize(errMsg string) string {
	if errMsg == "" {
		errMsg = "Unknown error"
	}
	lower := strings.ToLower(errMsg)

	switch {
	case strings.Contains(errMsg, "Invalid URL"):
		return "Invalid URL"
	case strings.Contains(errMsg, "No plugin can handle URL"):
		return "No plugin can handle URL"
	case strings.Contains(errMsg, "No playable streams found"):
		return "No playable streams found"
	case strings.Contains(lower, "timeout"):
		return "Timeout"
	case strings.Contains(errMsg, "404") || strings.Contains(lower, "not found"):
		return "404/Not Found"
	case strings.Contains(errMsg, "403") || strings.Contains(lower, "forbidden"):
		return "403/Forbidden"
	case strings.Contains(lower, "ssl") || strings.Contains(lower, "certificate"):
		return "SSL/Certificate Error"
	case strings.Contains(lower, "ffprobe"):
		return "FFprobe Error"
	case strings.Contains(errMsg, "HTTP Error"):
		return "HTTP Error"
	default:
		return "Other"
	}
}
