// Package redirect picks the store destination for a client from its User-Agent.
package redirect

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// Platform - client platform tag used to pick a destination.
type Platform string

const (
	// PlatformIOS: iPhone, iPad and iPod clients.
	PlatformIOS Platform = "ios"
	// PlatformAndroid: Android clients.
	PlatformAndroid Platform = "android"
	// PlatformWeb: everything else.
	PlatformWeb Platform = "web"
)

// iOS tokens are checked before the Android one; a signal carrying both resolves to iOS.
var (
	iosTokens    = []string{"iphone", "ipad", "ipod"}
	androidToken = "android"
)

// ErrInvalidDestination - a destination URL is missing or is not an absolute http(s) URL.
var ErrInvalidDestination = errors.New("invalid destination URL")

// Destinations - platform to URL mapping. Built once at startup and never mutated.
type Destinations struct {
	// IOS: App Store link.
	IOS string `json:"ios"`
	// Android: Google Play link.
	Android string `json:"android"`
	// Web: fallback for every other client.
	Web string `json:"web"`
}

// Detect returns the platform for the given client signal (usually the User-Agent header).
// Matching is a case-insensitive substring search; an empty signal yields PlatformWeb.
func Detect(signal string) Platform {
	s := strings.ToLower(signal)

	if lo.SomeBy(iosTokens, func(token string) bool { return strings.Contains(s, token) }) {
		return PlatformIOS
	}
	if strings.Contains(s, androidToken) {
		return PlatformAndroid
	}
	return PlatformWeb
}

// URLFor returns the destination for p. Unknown platforms get the web destination.
func (d Destinations) URLFor(p Platform) string {
	switch p {
	case PlatformIOS:
		return d.IOS
	case PlatformAndroid:
		return d.Android
	default:
		return d.Web
	}
}

// Resolve detects the platform of signal and returns it together with its destination.
func (d Destinations) Resolve(signal string) (Platform, string) {
	p := Detect(signal)
	return p, d.URLFor(p)
}

// Validate checks that all three destinations are absolute http(s) URLs with a host.
func (d Destinations) Validate() error {
	for _, p := range []Platform{PlatformIOS, PlatformAndroid, PlatformWeb} {
		if err := validateURL(d.URLFor(p)); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func validateURL(raw string) error {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fmt.Errorf("%w: empty", ErrInvalidDestination)
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDestination, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrInvalidDestination, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: no host", ErrInvalidDestination)
	}
	return nil
}
