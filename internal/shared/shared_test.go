package shared

import "testing"

func TestNormalizeGroup(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already canonical",
			input: "U15",
			want:  "U15",
		},
		{
			name:  "lowercase",
			input: "u17",
			want:  "U17",
		},
		{
			name:  "seniors casing",
			input: "SENIORS",
			want:  "Seniors",
		},
		{
			name:  "singular seniors",
			input: "senior",
			want:  "Seniors",
		},
		{
			name:  "surrounding whitespace",
			input: "  u13  ",
			want:  "U13",
		},
		{
			name:  "unknown label passes through",
			input: "Vétérans",
			want:  "Vétérans",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeGroup(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeGroup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a == b {
		t.Errorf("expected unique IDs, got %s twice", a)
	}
}
