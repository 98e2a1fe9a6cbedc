package tracking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"readiness-backend/internal/fingerprint"
)

type fakeLinker struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]error
}

func (l *fakeLinker) LinkOwner(ctx context.Context, assessmentID, userID, companyID, deviceID string, linkedAt time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err, ok := l.fail[assessmentID]; ok {
		return err
	}
	l.calls = append(l.calls, assessmentID)
	return nil
}

type failingRepo struct{}

func (failingRepo) Create(ctx context.Context, record Record) error {
	return errors.New("store unavailable")
}

func (failingRepo) ListUnlinkedByDevice(ctx context.Context, deviceID string) ([]Record, error) {
	return nil, errors.New("store unavailable")
}

func (failingRepo) MarkLinked(ctx context.Context, recordID, userID, companyID string, linkedAt time.Time) error {
	return errors.New("store unavailable")
}

// markLinkedFailsOnce wraps MemoryRepo to fail the first MarkLinked call,
// simulating a crash between the content and tracking updates.
type markLinkedFailsOnce struct {
	*MemoryRepo
	failed bool
}

func (r *markLinkedFailsOnce) MarkLinked(ctx context.Context, recordID, userID, companyID string, linkedAt time.Time) error {
	if !r.failed {
		r.failed = true
		return errors.New("write timeout")
	}
	return r.MemoryRepo.MarkLinked(ctx, recordID, userID, companyID, linkedAt)
}

func testProbe() fingerprint.Probe {
	return fingerprint.Probe{
		UserAgent:        "Mozilla/5.0",
		ScreenResolution: "1280x800",
		Timezone:         "UTC",
		Language:         "en-US",
		Platform:         "MacIntel",
		CookieEnabled:    true,
	}
}

func TestTagCreatesUnlinkedRecord(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, &fakeLinker{})

	record := svc.Tag(context.Background(), "assessment-1", testProbe())

	if record.ID == "" {
		t.Fatalf("expected tracked record")
	}
	if record.IsLinked {
		t.Fatalf("expected record to start unlinked")
	}
	if record.DeviceID != fingerprint.Compute(testProbe()).ID {
		t.Fatalf("expected device id to match computed fingerprint")
	}

	unlinked, err := repo.ListUnlinkedByDevice(context.Background(), record.DeviceID)
	if err != nil {
		t.Fatalf("ListUnlinkedByDevice: %v", err)
	}
	if len(unlinked) != 1 {
		t.Fatalf("expected 1 unlinked record, got %d", len(unlinked))
	}
}

func TestTagSwallowsStoreFailure(t *testing.T) {
	svc := NewService(failingRepo{}, &fakeLinker{})

	record := svc.Tag(context.Background(), "assessment-1", testProbe())

	if record.ID != "" {
		t.Fatalf("expected zero record on store failure, got %+v", record)
	}
}

func TestFindAndLinkIsIdempotent(t *testing.T) {
	repo := NewMemoryRepo()
	linker := &fakeLinker{}
	svc := NewService(repo, linker)
	ctx := context.Background()

	svc.Tag(ctx, "assessment-1", testProbe())

	first := svc.FindAndLink(ctx, "user-1", "company-1", testProbe())
	if len(first) != 1 {
		t.Fatalf("expected 1 linked record, got %d", len(first))
	}
	rec := first[0]
	if !rec.IsLinked || rec.LinkedUserID != "user-1" || rec.LinkedCompanyID != "company-1" {
		t.Fatalf("expected linked record with identity, got %+v", rec)
	}
	if rec.LinkedAt == nil {
		t.Fatalf("expected linkedAt stamp")
	}

	second := svc.FindAndLink(ctx, "user-1", "company-1", testProbe())
	if len(second) != 0 {
		t.Fatalf("expected second call to find nothing, got %d", len(second))
	}
	if len(linker.calls) != 1 {
		t.Fatalf("expected content re-owned once, got %d calls", len(linker.calls))
	}
}

func TestFindAndLinkLinksMultipleRecords(t *testing.T) {
	repo := NewMemoryRepo()
	linker := &fakeLinker{}
	svc := NewService(repo, linker)
	ctx := context.Background()

	// A visitor who took the assessment three times before signing up.
	svc.Tag(ctx, "assessment-1", testProbe())
	svc.Tag(ctx, "assessment-2", testProbe())
	svc.Tag(ctx, "assessment-3", testProbe())

	linked := svc.FindAndLink(ctx, "user-1", "", testProbe())
	if len(linked) != 3 {
		t.Fatalf("expected 3 linked records, got %d", len(linked))
	}
}

func TestFindAndLinkSkipsFailingRecordAndContinues(t *testing.T) {
	repo := NewMemoryRepo()
	linker := &fakeLinker{fail: map[string]error{"assessment-1": errors.New("content update failed")}}
	svc := NewService(repo, linker)
	ctx := context.Background()

	svc.Tag(ctx, "assessment-1", testProbe())
	svc.Tag(ctx, "assessment-2", testProbe())

	linked := svc.FindAndLink(ctx, "user-1", "company-1", testProbe())
	if len(linked) != 1 {
		t.Fatalf("expected 1 linked record, got %d", len(linked))
	}
	if linked[0].AssessmentInstanceID != "assessment-2" {
		t.Fatalf("expected the healthy record linked, got %q", linked[0].AssessmentInstanceID)
	}

	// The failed record stays unlinked and is retried once the content
	// update succeeds again.
	linker.mu.Lock()
	delete(linker.fail, "assessment-1")
	linker.mu.Unlock()
	retried := svc.FindAndLink(ctx, "user-1", "company-1", testProbe())
	if len(retried) != 1 || retried[0].AssessmentInstanceID != "assessment-1" {
		t.Fatalf("expected retry to link assessment-1, got %+v", retried)
	}
}

func TestFindAndLinkHealsAfterPartialFailure(t *testing.T) {
	repo := &markLinkedFailsOnce{MemoryRepo: NewMemoryRepo()}
	linker := &fakeLinker{}
	svc := NewService(repo, linker)
	ctx := context.Background()

	svc.Tag(ctx, "assessment-1", testProbe())

	// First call: content re-owned, tracking update fails.
	if linked := svc.FindAndLink(ctx, "user-1", "company-1", testProbe()); len(linked) != 0 {
		t.Fatalf("expected no completed links on partial failure, got %d", len(linked))
	}
	if len(linker.calls) != 1 {
		t.Fatalf("expected content update attempted, got %d calls", len(linker.calls))
	}

	// Second call re-selects the record and re-applies both updates.
	linked := svc.FindAndLink(ctx, "user-1", "company-1", testProbe())
	if len(linked) != 1 {
		t.Fatalf("expected self-healing retry to link, got %d", len(linked))
	}
	if len(linker.calls) != 2 {
		t.Fatalf("expected content update re-applied, got %d calls", len(linker.calls))
	}
}

func TestFindAndLinkDifferentDeviceFindsNothing(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, &fakeLinker{})
	ctx := context.Background()

	svc.Tag(ctx, "assessment-1", testProbe())

	other := testProbe()
	other.UserAgent = "Mozilla/5.0 (different device)"
	if linked := svc.FindAndLink(ctx, "user-1", "", other); len(linked) != 0 {
		t.Fatalf("expected no cross-device links, got %d", len(linked))
	}
}
