package valueobject

import "testing"

func TestHashLower(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
		{
			name:  "known digest",
			input: "foo@bar.com",
			want:  "0c7e6a405862e402eb76a70f8a26fc732d07c32931e9fae9ab1582911d2e8a3b",
		},
		{
			name:  "trimmed and lowercased before hashing",
			input: "  Foo@Bar.COM ",
			want:  "0c7e6a405862e402eb76a70f8a26fc732d07c32931e9fae9ab1582911d2e8a3b",
		},
		{
			name:  "phone number",
			input: "+15551234567",
			want:  "8a59780bb8cd2ba022bfa5ba2ea3b6e07af17a7d8b30c1f9b3390e36f69019e4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HashLower(tt.input); got != tt.want {
				t.Fatalf("HashLower(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHashLower_normalizationEquivalence(t *testing.T) {
	variants := []string{"a@b.com", " a@b.com", "A@B.COM", "\ta@B.com\n"}
	want := HashLower("a@b.com")
	for _, v := range variants {
		if got := HashLower(v); got != want {
			t.Fatalf("HashLower(%q) = %q, want %q", v, got, want)
		}
	}
}
