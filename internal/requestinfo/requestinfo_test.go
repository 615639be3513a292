//
//  internal/requestinfo/requestinfo_test.go
//
//  UA parsing and middleware wiring.
//

package requestinfo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avct/uasurfer"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/124.0.6367.91 Safari/537.36"

func TestParseUA(t *testing.T) {
	ua := parseUA(chromeUA)
	if ua.Browser != "Chrome" {
		t.Errorf("browser = %q", ua.Browser)
	}
	if ua.OS != "Windows" {
		t.Errorf("os = %q", ua.OS)
	}
	if ua.Device != "Desktop" {
		t.Errorf("device = %q", ua.Device)
	}
	if ua.IsBot {
		t.Error("desktop Chrome flagged as bot")
	}
}

func TestParseUABot(t *testing.T) {
	ua := parseUA("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
	if !ua.IsBot {
		t.Error("Googlebot not flagged as bot")
	}
}

func TestTrimVersion(t *testing.T) {
	cases := []struct {
		v    uasurfer.Version
		want string
	}{
		{uasurfer.Version{Major: 124}, "124"},
		{uasurfer.Version{Major: 17, Minor: 4}, "17.4"},
		{uasurfer.Version{}, "0"},
	}
	for _, tc := range cases {
		if got := trimVersion(tc.v); got != tc.want {
			t.Errorf("trimVersion(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestEnrichStoresInfo(t *testing.T) {
	var got *Info
	h := Enrich(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	req := httptest.NewRequest("POST", "/api/leads", nil)
	req.Header.Set("User-Agent", chromeUA)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("Info missing from context")
	}
	if got.UA.Browser != "Chrome" {
		t.Errorf("browser = %q", got.UA.Browser)
	}
	// First hop of the X-Forwarded-For chain wins.
	if got.Geo.IP.String() != "203.0.113.7" {
		t.Errorf("ip = %v", got.Geo.IP)
	}
	if got.Timestamp.IsZero() {
		t.Error("timestamp not stamped")
	}
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if FromContext(req.Context()) != nil {
		t.Fatal("expected nil Info on bare context")
	}
}
