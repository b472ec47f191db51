package newapp

import (
	"net/url"
)

// MapsLauncher is the external collaborator that opens a maps application for
// a destination. Implementations report only whether any launch succeeded;
// scheme negotiation is their concern, not the orchestrator's.
type MapsLauncher interface {
	Open_With_Directions(destination string) bool
}

// URLOpener hands a URL to the platform. It returns an error when the URL
// could not be opened (no handler installed, launch refused).
type URLOpener func(rawURL string) error

// LinkMapsLauncher negotiates the launch scheme chain: the maps app deep
// link first, the generic geo URI second, the web maps URL last. The first
// opener success wins.
type LinkMapsLauncher struct {
	Open URLOpener
}

// NewLinkMapsLauncher builds a launcher around a platform opener.
func NewLinkMapsLauncher(open URLOpener) *LinkMapsLauncher {
	return &LinkMapsLauncher{Open: open}
}

// Open_With_Directions tries each candidate URL in order and reports whether
// any launch succeeded.
func (l *LinkMapsLauncher) Open_With_Directions(destination string) bool {
	if l.Open == nil || destination == "" {
		return false
	}
	for _, candidate := range directionURLs(destination) {
		if err := l.Open(candidate); err == nil {
			return true
		}
	}
	return false
}

func directionURLs(destination string) []string {
	escaped := url.QueryEscape(destination)
	return []string{
		"google.navigation:q=" + escaped,
		"geo:0,0?q=" + escaped,
		"https://www.google.com/maps/dir/?api=1&destination=" + escaped,
	}
}
