package feed

import (
	"math/rand/v2"
	"net/http"
)

// feedAccept lists feed formats first, some servers only serve feeds to clients asking for them
const feedAccept = "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,text/html;q=0.7,*/*;q=0.5"

var acceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.9",
	"en-US,en;q=0.9,de;q=0.8",
	"en-US,en;q=0.9,fr;q=0.8",
}

// addBrowserHeaders sets headers a browser would send for a feed url
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", feedAccept)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept-Language", acceptLanguages[rand.IntN(len(acceptLanguages))]) //nolint:gosec // header variation only
	req.Header.Set("Connection", "keep-alive")
}
