package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// HeaderHandler returns an http.Handler that adds the given headers to the response.
func HeaderHandler(h http.Handler, headers map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		h.ServeHTTP(w, r)
	})
}

// isDynamic reports whether the path is a rendered page rather than a static file.
func isDynamic(p string) bool {
	return strings.HasSuffix(p, "/") || strings.HasSuffix(p, ".html") || p == "/sitemap.txt"
}

// ExpiresHandler adds the Expires and Cache-Control headers choosing expires for
// rendered pages and staticExpires for static content. A zero duration adds nothing.
func ExpiresHandler(h http.Handler, expires, staticExpires time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expiry := staticExpires
		if isDynamic(r.URL.Path) {
			expiry = expires
		}
		if expiry > 0 {
			w.Header().Set("Expires", time.Now().Add(expiry).UTC().Format(http.TimeFormat))
			w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(expiry.Seconds())))
		}
		h.ServeHTTP(w, r)
	})
}
