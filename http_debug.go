package royalmail

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// troubleshooting API communication problems (unexpected statuses, malformed
// bodies, credential issues).
//
// Activation: pass WithDebugLogging(true), or set ROYALMAIL_DEBUG=true (or
// the general DEBUG=true) in the environment.
//
// Security considerations: the dumps include the X-IBM-Client-Id and
// X-IBM-Client-Secret headers and full response bodies. Only enable in
// development environments and keep the log output secured.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := dt.base
	if next == nil {
		next = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := next.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled via
// the environment. ROYALMAIL_DEBUG targets this SDK; DEBUG is the general
// flag common in development workflows. Both must be exactly "true".
func debugLoggingRequested() bool {
	return os.Getenv("ROYALMAIL_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
