// Package httpfetch implements driven.PageFetcher over HTTP.
//
// Each fetch is a single GET with no retries. Requests are paced with a
// token bucket so repeated runs stay polite towards the wiki servers, and
// response bodies are decoded to UTF-8 using the charset announced by the
// server or the document itself.
package httpfetch
