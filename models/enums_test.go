package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateString_ParseDate(t *testing.T) {
	cases := []struct {
		in      string
		wantErr bool
	}{
		{"2024-03-05", false},
		{"2024-03-05T14:30:00", false},
		{"05/03/2024", true},
		{"not-a-date", true},
		{"", true},
	}
	for _, tc := range cases {
		var d DateString
		err := d.ParseDate(tc.in)
		if tc.wantErr && err == nil {
			t.Fatalf("ParseDate(%q) expected error", tc.in)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("ParseDate(%q) error: %v", tc.in, err)
		}
	}
}

func TestDateString_StartAndEndOfDay(t *testing.T) {
	var d DateString
	if err := d.ParseDate("2024-03-05T14:30:45"); err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}

	start := d
	start.StartOfDay()
	st := time.Time(start)
	if st.Hour() != 0 || st.Minute() != 0 || st.Second() != 0 {
		t.Fatalf("StartOfDay expected midnight, got %v", st)
	}

	end := d
	end.EndOfDay()
	et := time.Time(end)
	if et.Hour() != 23 || et.Minute() != 59 || et.Second() != 59 {
		t.Fatalf("EndOfDay expected 23:59:59, got %v", et)
	}
	if st.Year() != et.Year() || st.Month() != et.Month() || st.Day() != et.Day() {
		t.Fatalf("StartOfDay and EndOfDay changed the calendar date")
	}
}

func TestDateString_JSONRoundTrip(t *testing.T) {
	var d DateString
	if err := json.Unmarshal([]byte(`"2024-03-05"`), &d); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != `"2024-03-05"` {
		t.Fatalf("expected \"2024-03-05\", got %s", out)
	}

	if err := json.Unmarshal([]byte(`12345`), &d); err == nil {
		t.Fatalf("expected error for non-string date")
	}
}

func TestEnums_UnmarshalRejectsUnknownValues(t *testing.T) {
	var es EquipmentStatus
	if err := json.Unmarshal([]byte(`"operational"`), &es); err != nil {
		t.Fatalf("valid equipment status rejected: %v", err)
	}
	if err := json.Unmarshal([]byte(`"broken"`), &es); err == nil {
		t.Fatalf("invalid equipment status accepted")
	}

	var ts TransactionStatus
	if err := json.Unmarshal([]byte(`"paid"`), &ts); err != nil {
		t.Fatalf("valid transaction status rejected: %v", err)
	}
	if err := json.Unmarshal([]byte(`"refunded"`), &ts); err == nil {
		t.Fatalf("invalid transaction status accepted")
	}

	var role UserRole
	if err := json.Unmarshal([]byte(`"technician"`), &role); err != nil {
		t.Fatalf("valid role rejected: %v", err)
	}
	if err := json.Unmarshal([]byte(`"superuser"`), &role); err == nil {
		t.Fatalf("invalid role accepted")
	}
}
