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
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
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
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Error("IsValidDate(2024-02-29) should be valid (leap year)")
	}
	if _, ok := IsValidDate("2023-02-29"); ok {
		t.Error("IsValidDate(2023-02-29) should be invalid")
	}
	if _, ok := IsValidDate("15-01-2024"); ok {
		t.Error("IsValidDate(15-01-2024) should be invalid")
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"09:00", "00:00", "23:59"}
	invalid := []string{"24:00", "9:00:00", "09.00", "", "noon"}
	for _, c := range valid {
		if !IsValidClockTime(c) {
			t.Errorf("IsValidClockTime(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidClockTime(c) {
			t.Errorf("IsValidClockTime(%q) = true, want false", c)
		}
	}
}

func TestIsValidDayName(t *testing.T) {
	if !IsValidDayName("Sunday") {
		t.Error("Sunday should be a valid day name")
	}
	if IsValidDayName("sunday") {
		t.Error("day names are case sensitive")
	}
	if IsValidDayName("Funday") {
		t.Error("Funday is not a day name")
	}
}

func TestIsValidMonth(t *testing.T) {
	for m := 1; m <= 12; m++ {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = false, want true", m)
		}
	}
	for _, m := range []int{0, 13, -1} {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = true, want false", m)
		}
	}
}
