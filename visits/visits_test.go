package visits

import (
	"strings"
	"testing"

	"milovat/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.VisitExpected, models.VisitInside, true},
		{models.VisitInside, models.VisitLeft, true},
		{models.VisitExpected, models.VisitLeft, false},
		{models.VisitInside, models.VisitInside, false},
		{models.VisitLeft, models.VisitInside, false},
		{models.VisitLeft, models.VisitExpected, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestPassPayloadBindsVisitFields(t *testing.T) {
	v := models.Visit{ID: "v1", Unit: "4B", Date: "2025-06-01"}

	payload := GeneratePassPayload(v)
	if !strings.HasPrefix(payload, "v1|4B|2025-06-01|") {
		t.Fatalf("payload %q does not carry the visit fields", payload)
	}

	other := GeneratePassPayload(models.Visit{ID: "v1", Unit: "5C", Date: "2025-06-01"})
	if payload[strings.LastIndex(payload, "|"):] == other[strings.LastIndex(other, "|"):] {
		t.Fatal("signature must change when the unit changes")
	}
}
