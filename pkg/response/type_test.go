package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"autonomous-task-extraction/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	tm := time.Date(2024, 5, 1, 23, 30, 0, 0, loc)

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}

	if string(b) != `"2024-05-01"` {
		t.Errorf("expected date in its own location, got %s", b)
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d response.Date
	if err := json.Unmarshal([]byte(`"2024-05-03"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := time.Time(d); !got.Equal(time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", got)
	}
	if err := json.Unmarshal([]byte(`"03/05/2024"`), &d); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) < 15 {
		t.Errorf("marshaled string too short: %s", str)
	}
}
