package game

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDetailsTag(t *testing.T) {
	cases := []struct {
		details Details
		want    Type
	}{
		{Details{ReadingSpeed: &ReadingSpeedDetails{}}, TypeReadingSpeed},
		{Details{WordMemory: &WordMemoryDetails{}}, TypeWordMemory},
		{Details{TextComprehension: &TextComprehensionDetails{}}, TypeTextComprehension},
		{Details{INumbs: &INumbsDetails{}}, TypeINumbs},
		{Details{TextRecall: &TextRecallDetails{}}, TypeTextRecall},
		{Details{}, Type("")},
	}
	for _, c := range cases {
		if got := c.details.Tag(); got != c.want {
			t.Errorf("Tag() = %q, want %q", got, c.want)
		}
	}
}

func TestResultValidate(t *testing.T) {
	valid := Result{
		GameType:  TypeWordMemory,
		Score:     75,
		Details:   Details{WordMemory: &WordMemoryDetails{WordsCorrect: 6}},
		Timestamp: time.Now(),
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid result rejected: %v", err)
	}

	bad := valid
	bad.GameType = "bogus"
	if bad.Validate() == nil {
		t.Error("unknown game type accepted")
	}

	mismatched := valid
	mismatched.GameType = TypeINumbs
	if mismatched.Validate() == nil {
		t.Error("details tag mismatch accepted")
	}

	outOfRange := valid
	outOfRange.Score = 101
	if outOfRange.Validate() == nil {
		t.Error("score above 100 accepted")
	}
}

func TestResultJSONRoundTrip(t *testing.T) {
	in := Result{
		GameType: TypeReadingSpeed,
		Score:    83.5,
		Details: Details{
			ReadingSpeed: &ReadingSpeedDetails{
				RoundsCorrect: 8,
				TotalRounds:   10,
				TimeTaken:     42 * time.Second,
			},
		},
		Timestamp: time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	var out Result
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Details.Tag() != TypeReadingSpeed {
		t.Errorf("round trip lost details variant, tag = %q", out.Details.Tag())
	}
	if out.Details.ReadingSpeed.RoundsCorrect != 8 {
		t.Errorf("RoundsCorrect = %d, want 8", out.Details.ReadingSpeed.RoundsCorrect)
	}
	if !out.Timestamp.Equal(in.Timestamp) {
		t.Errorf("timestamp changed: %v != %v", out.Timestamp, in.Timestamp)
	}
}

func TestRegistryUnknownType(t *testing.T) {
	if _, err := Create(Type("nope"), Config{}); err == nil {
		t.Error("Create accepted unregistered type")
	}
	if Registered(Type("nope")) {
		t.Error("Registered reported an unregistered type")
	}
}
