package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"guard@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"guard@", "@example.com", "guard@.com", "guard@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "not-a-date", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"08:00:00", "23:59:59", "00:00:00"}
	invalid := []string{"24:00:00", "08:00", "8am", ""}
	for _, s := range valid {
		if _, ok := IsValidTimeOfDay(s); !ok {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidTimeOfDay(s); ok {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidLatitudeLongitude(t *testing.T) {
	if !IsValidLatitude(35.7) || !IsValidLatitude(-90) || !IsValidLatitude(90) {
		t.Error("expected in-range latitudes to be valid")
	}
	if IsValidLatitude(90.01) || IsValidLatitude(-91) {
		t.Error("expected out-of-range latitudes to be invalid")
	}
	if !IsValidLongitude(45.1) || !IsValidLongitude(-180) || !IsValidLongitude(180) {
		t.Error("expected in-range longitudes to be valid")
	}
	if IsValidLongitude(180.5) || IsValidLongitude(-200) {
		t.Error("expected out-of-range longitudes to be invalid")
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+9647501234567", "07501234567", "0750 123 4567"}
	invalid := []string{"12345", "not-a-phone", ""}
	for _, s := range valid {
		if !IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date is required"},
		{Field: "window_days", Message: "window_days must be positive"},
	}
	m := errs.ToMap()
	if m["date"] != "date is required" || m["window_days"] != "window_days must be positive" {
		t.Errorf("unexpected map: %v", m)
	}
	if errs.Error() == "" {
		t.Error("expected non-empty error string")
	}
}
