package announcements

import "testing"

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBuildAnnouncementUpdateOmittedPinnedUntouched(t *testing.T) {
	update := buildAnnouncementUpdate(announcementPatch{Title: strPtr("Corte de agua")}, 42)

	if _, ok := update["pinned"]; ok {
		t.Fatal("pinned must not change when the payload omits it")
	}
	if update["title"] != "Corte de agua" {
		t.Fatalf("title = %v, want Corte de agua", update["title"])
	}
	if update["updatedAt"] != int64(42) {
		t.Fatalf("updatedAt = %v, want 42", update["updatedAt"])
	}
}

func TestBuildAnnouncementUpdateExplicitUnpin(t *testing.T) {
	update := buildAnnouncementUpdate(announcementPatch{Pinned: boolPtr(false)}, 42)

	pinned, ok := update["pinned"]
	if !ok || pinned != false {
		t.Fatalf("pinned = %v (present=%v), want explicit false", pinned, ok)
	}
}

func TestBuildAnnouncementUpdateTrimsText(t *testing.T) {
	update := buildAnnouncementUpdate(announcementPatch{Body: strPtr("  nuevo texto  ")}, 42)

	if update["body"] != "nuevo texto" {
		t.Fatalf("body = %q, want trimmed", update["body"])
	}
}
