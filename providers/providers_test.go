package providers

import "testing"

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBuildProviderUpdateEmptyPatch(t *testing.T) {
	if update := buildProviderUpdate(providerPatch{}); len(update) != 0 {
		t.Fatalf("empty patch must build an empty update, got %v", update)
	}
}

func TestBuildProviderUpdateOmittedActiveUntouched(t *testing.T) {
	update := buildProviderUpdate(providerPatch{Name: strPtr("Gasfitería López")})

	if _, ok := update["active"]; ok {
		t.Fatal("active must not change when the payload omits it")
	}
	if update["name"] != "Gasfitería López" {
		t.Fatalf("name = %v, want Gasfitería López", update["name"])
	}
}

func TestBuildProviderUpdateExplicitDeactivate(t *testing.T) {
	update := buildProviderUpdate(providerPatch{Active: boolPtr(false)})

	active, ok := update["active"]
	if !ok || active != false {
		t.Fatalf("active = %v (present=%v), want explicit false", active, ok)
	}
}
