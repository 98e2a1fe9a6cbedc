package fingerprint

import (
	"strconv"
	"strings"
)

// Probe carries the capability readings collected on the visitor's device.
// Every field is best-effort: an unavailable probe (canvas, WebGL) arrives
// as an empty string and still produces a valid fingerprint.
type Probe struct {
	UserAgent        string `json:"userAgent"`
	ScreenResolution string `json:"screenResolution"`
	Timezone         string `json:"timezone"`
	Language         string `json:"language"`
	Platform         string `json:"platform"`
	CookieEnabled    bool   `json:"cookieEnabled"`
	LocalStorage     bool   `json:"localStorage"`
	SessionStorage   bool   `json:"sessionStorage"`
	Canvas           string `json:"canvas"`
	WebGL            string `json:"webgl"`
}

// Fingerprint is a probe plus its derived stable identifier.
type Fingerprint struct {
	Probe
	ID string `json:"fingerprint"`
}

// Compute derives the deterministic device identifier from a probe. Equal
// probes always produce equal identifiers; that equality is the only thing
// the linking flow can match on.
func Compute(probe Probe) Fingerprint {
	return Fingerprint{
		Probe: probe,
		ID:    hashID(canonical(probe)),
	}
}

// canonical concatenates all probe fields in fixed order. Changing the order
// or separator invalidates every stored fingerprint.
func canonical(probe Probe) string {
	fields := []string{
		probe.UserAgent,
		probe.ScreenResolution,
		probe.Timezone,
		probe.Language,
		probe.Platform,
		boolField(probe.CookieEnabled),
		boolField(probe.LocalStorage),
		boolField(probe.SessionStorage),
		probe.Canvas,
		probe.WebGL,
	}
	return strings.Join(fields, "|")
}

// hashID reduces the canonical string through a 32-bit rolling hash to a
// short base-36 identifier. Non-cryptographic on purpose: the id only needs
// stability, not collision resistance against an adversary.
func hashID(s string) string {
	var h int32
	for _, r := range s {
		h = h<<5 - h + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
