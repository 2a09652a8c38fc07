package extract

import (
	"reflect"
	"testing"
)

func TestPriceCap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"with dollar sign", "midi dress under $120 please", 120, true},
		{"no dollar sign", "something under 80", 80, true},
		{"spaced", "under  $ 95", 95, true},
		{"first match wins", "under $50 or under $300", 50, true},
		{"mixed case", "Under $75", 75, true},
		{"absent", "wedding guest dress", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := PriceCap(tc.text)
			if ok != tc.ok {
				t.Fatalf("PriceCap(%q) ok = %v, want %v", tc.text, ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("PriceCap(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"both", "Wedding guest, midi, under $120", []string{"wedding", "midi"}},
		{"wedding only", "a wedding outfit", []string{"wedding"}},
		{"midi only", "looking for a MIDI dress", []string{"midi"}},
		{"none", "cancel my order", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Tags(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tags(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestPostalCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"six digits", "ETA to 560001?", "560001"},
		{"five digits", "ship to 10001 asap", "10001"},
		{"too short", "zip 1234", DefaultPostalCode},
		{"absent", "wedding dress", DefaultPostalCode},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := PostalCode(tc.text); got != tc.want {
				t.Fatalf("PostalCode(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestOrderID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"with order word", "Cancel order A1003 please", "A1003", true},
		{"bare token", "ref B20041 is mine", "B20041", true},
		{"too few digits", "order A123", "", false},
		{"absent", "where is my parcel", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := OrderID(tc.text)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("OrderID(%q) = (%q, %v), want (%q, %v)", tc.text, got, ok, tc.want, tc.ok)
			}
		})
	}
}

// The pattern is deliberately loose: the first letter+digits token wins even
// when it is not the order id the user meant. This pins that behavior.
func TestOrderIDFirstMatchWins(t *testing.T) {
	t.Parallel()

	got, ok := OrderID("tracking X99999, cancel order A1003")
	if !ok || got != "X99999" {
		t.Fatalf("OrderID = (%q, %v), want first token X99999", got, ok)
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"plain", "email mira@example.com.", "mira@example.com", true},
		{"subdomain", "reach me at a.b+c@mail.example.co.uk", "a.b+c@mail.example.co.uk", true},
		{"absent", "no contact given", "", false},
		{"not an address", "meet @ noon", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Email(tc.text)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Email(%q) = (%q, %v), want (%q, %v)", tc.text, got, ok, tc.want, tc.ok)
			}
		})
	}
}

// An e-mail address alone must not satisfy the order-id pattern: its local
// part never starts a letter+digits run after the regex requires one letter
// directly followed by four digits.
func TestOrderIDNotFooledByEmail(t *testing.T) {
	t.Parallel()

	if got, ok := OrderID("email alex@example.com please"); ok {
		t.Fatalf("OrderID matched %q inside an email-only prompt", got)
	}
}
