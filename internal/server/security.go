package server

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/LondonTravel_Go/internal/logger"
)

// windowCounter counts events per IP over a fixed window. Callers hold the
// detector mutex.
type windowCounter map[string]int

// SuspiciousActivityDetector tracks request rates and failed bearer-token
// attempts per client IP
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	window      time.Duration
	windowStart time.Time
	requests    windowCounter
	failedAuth  windowCounter
	now         func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return newDetector(DetectorWindow, time.Now)
}

func newDetector(window time.Duration, now func() time.Time) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		window:      window,
		windowStart: now(),
		requests:    make(windowCounter),
		failedAuth:  make(windowCounter),
		now:         now,
	}
}

// rollWindow starts a new window once the current one has elapsed
func (s *SuspiciousActivityDetector) rollWindow() {
	if s.now().Sub(s.windowStart) > s.window {
		s.requests = make(windowCounter)
		s.failedAuth = make(windowCounter)
		s.windowStart = s.now()
	}
}

// RecordFailedAuth counts a rejected bearer token and alerts once the IP
// crosses FailedAuthAlertThreshold
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	s.failedAuth[ip]++

	if n := s.failedAuth[ip]; n == FailedAuthAlertThreshold || n == FailedAuthLockoutThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n, "locked_out", n >= FailedAuthLockoutThreshold)
	}
}

// IsLockedOut reports whether ip has failed bearer authentication too often
// in the current window
func (s *SuspiciousActivityDetector) IsLockedOut(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	return s.failedAuth[ip] >= FailedAuthLockoutThreshold
}

// RecordRequest counts a request and returns false once ip exceeds RequestRateLimit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	s.requests[ip]++

	n := s.requests[ip]
	if n <= RequestRateLimit {
		return true
	}
	if n%RateLimitLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// RateLimitMiddleware rejects clients above the per-IP request rate
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// FailedAuthMiddleware guards the bearer-token API. Every 401 from the
// wrapped handler is recorded against the client IP, and an IP that keeps
// guessing tokens is refused before its token is looked up.
func FailedAuthMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			log := logger.FromContext(r.Context())

			if detector.IsLockedOut(ip) {
				log.Warn(LogMsgAuthLockedOut, "ip", ip, "path", r.URL.Path)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			if rw.statusCode != http.StatusUnauthorized {
				return
			}

			detector.RecordFailedAuth(ip)
			log.Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_authorization", r.Header.Get(HeaderAuthorization) != "")
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies; the manage forms are small JSON documents
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honoured only
// when the direct peer is a trusted proxy, and then only its rightmost hop.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !isTrustedProxy(remoteIP, trustedProxies) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

func isTrustedProxy(ip string, trustedProxies []string) bool {
	for _, proxy := range trustedProxies {
		if proxy == ip {
			return true
		}
	}
	return false
}

// SecurityHeadersMiddleware sets browser hardening headers on every response
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			// Account pages must not leak the Alexa redirect to third parties
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerNone)
			// Swagger UI relies on inline scripts
			if !strings.HasPrefix(r.URL.Path, SwaggerPathPrefix) {
				h.Set(HeaderCSP, HeaderValueCSP)
			}

			next.ServeHTTP(w, r)
		})
	}
}
