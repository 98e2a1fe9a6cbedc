package fingerprint

import "testing"

func sampleProbe() Probe {
	return Probe{
		UserAgent:        "Mozilla/5.0 (X11; Linux x86_64)",
		ScreenResolution: "1920x1080",
		Timezone:         "Europe/Berlin",
		Language:         "de-DE",
		Platform:         "Linux x86_64",
		CookieEnabled:    true,
		LocalStorage:     true,
		SessionStorage:   true,
		Canvas:           "data:image/png;base64,iVBORw0KGgo=",
		WebGL:            "Mesa/Intel",
	}
}

func TestComputeDeterministic(t *testing.T) {
	a := Compute(sampleProbe())
	b := Compute(sampleProbe())
	if a.ID == "" {
		t.Fatalf("expected non-empty fingerprint id")
	}
	if a.ID != b.ID {
		t.Fatalf("expected identical ids, got %q and %q", a.ID, b.ID)
	}
}

func TestComputeSensitiveToProbeFields(t *testing.T) {
	base := Compute(sampleProbe())

	changed := sampleProbe()
	changed.ScreenResolution = "2560x1440"
	if Compute(changed).ID == base.ID {
		t.Fatalf("expected different id for different resolution")
	}
}

func TestComputeDegradedProbes(t *testing.T) {
	probe := sampleProbe()
	probe.Canvas = ""
	probe.WebGL = ""

	fp := Compute(probe)
	if fp.ID == "" {
		t.Fatalf("expected fingerprint despite missing canvas/webgl probes")
	}
	if fp.ID == Compute(sampleProbe()).ID {
		t.Fatalf("expected degraded probe to hash differently")
	}
}

func TestGeneratorStableAcrossCalls(t *testing.T) {
	gen := &Generator{Storage: NewMemoryStorage()}

	first := gen.Get(sampleProbe())
	second := gen.Get(sampleProbe())
	if first.ID != second.ID {
		t.Fatalf("expected stable fingerprint, got %q then %q", first.ID, second.ID)
	}

	// Probe drift after first generation must not change the stored id.
	drifted := sampleProbe()
	drifted.UserAgent = "Mozilla/5.0 (X11; Linux x86_64) Updated"
	third := gen.Get(drifted)
	if third.ID != first.ID {
		t.Fatalf("expected stored fingerprint reused, got %q", third.ID)
	}
}

func TestFileStorageRoundTrip(t *testing.T) {
	storage := &FileStorage{Dir: t.TempDir(), Key: "profile-1"}
	gen := &Generator{Storage: storage}

	first := gen.Get(sampleProbe())

	// A fresh generator over the same storage context resolves the same id.
	again := (&Generator{Storage: &FileStorage{Dir: storage.Dir, Key: storage.Key}}).Get(sampleProbe())
	if again.ID != first.ID {
		t.Fatalf("expected persisted fingerprint, got %q and %q", first.ID, again.ID)
	}

	if _, ok, err := storage.Load(); err != nil || !ok {
		t.Fatalf("expected stored fingerprint, ok=%v err=%v", ok, err)
	}
}
