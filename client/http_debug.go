package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for debugging client issues.
//
// When to use:
//   - Set WEBPICS_DEBUG=true or DEBUG=true environment variable
//   - During development when wiring a new screen or CLI command to the API
//   - When investigating why the backend rejects a request (missing admin
//     header, expired token, wrong multipart field)
//
// Security considerations:
//   - Authorization, X-Admin-Token, Cookie and Set-Cookie values are redacted
//   - Bodies (including login passwords) are logged verbatim; multipart
//     bodies are skipped
//   - Only enable in development/staging environments
//
// Example usage:
//
//	export WEBPICS_DEBUG=true
//	webpics images list  # Client will now log all HTTP traffic
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	withBody := !strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/")
	if reqDump, err := httputil.DumpRequestOut(req, withBody); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", redactDump(string(reqDump))).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", redactDump(string(respDump))).Msg("HTTP response")
	}
	return resp, nil
}

// redactedHeaders carry credentials; the admin session lives in a cookie.
var redactedHeaders = []string{HeaderAuthorization, HeaderAdminToken, "Cookie", "Set-Cookie"}

// redactDump masks credential header values in a wire dump.
func redactDump(dump string) string {
	lines := strings.Split(dump, "\r\n")
	for i, line := range lines {
		if line == "" {
			break // end of headers
		}
		for _, h := range redactedHeaders {
			if strings.HasPrefix(strings.ToLower(line), strings.ToLower(h)+":") {
				lines[i] = h + ": [REDACTED]"
			}
		}
	}
	return strings.Join(lines, "\r\n")
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - WEBPICS_DEBUG=true (client-specific debug flag)
//   - DEBUG=true (general debug flag, common in development workflows)
func debugLoggingRequested() bool {
	return os.Getenv("WEBPICS_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
