package slug

import (
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"default department", "Bilgisayar Mühendisliği", "bilgisayar-muhendisligi"},
		{"dotted capital I", "İşletme", "isletme"},
		{"dotless capital I", "IĞDIR", "igdir"},
		{"cedilla and umlauts", "Çocuk Gelişimi Öğretmenliği", "cocuk-gelisimi-ogretmenligi"},
		{"combining dot above", "i̇ktisat", "iktisat"},
		{"acute e", "Kafé", "kafe"},
		{"ascii passthrough", "tip", "tip"},
		{"unsupported characters pass through", "Hukuk (İngilizce)", "hukuk-(ingilizce)"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Build(tt.input); got != tt.want {
				t.Errorf("Build(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuild_EachLetter(t *testing.T) {
	letters := map[string]string{
		"Ç": "c", "ç": "c",
		"Ğ": "g", "ğ": "g",
		"I": "i", "ı": "i",
		"İ": "i",
		"Ö": "o", "ö": "o",
		"Ş": "s", "ş": "s",
		"Ü": "u", "ü": "u",
		" ": "-",
		"é": "e",
	}

	for in, want := range letters {
		if got := Build(in); got != want {
			t.Errorf("Build(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	inputs := []string{"bilgisayar-muhendisligi", "tip", "elektrik-elektronik-muhendisligi", "x1"}

	for _, in := range inputs {
		once := Build(in)
		if twice := Build(once); twice != once {
			t.Errorf("Build(Build(%q)) = %q, want %q", in, twice, once)
		}
		if once != in {
			t.Errorf("Build(%q) = %q, want input unchanged", in, once)
		}
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{
			name:    "default host",
			baseURL: "",
			want:    "https://www.universitego.com/bilgisayar-muhendisligi-2024-taban-puanlari-ve-basari-siralamalari/",
		},
		{
			name:    "custom host with trailing slash",
			baseURL: "http://127.0.0.1:8080/",
			want:    "http://127.0.0.1:8080/bilgisayar-muhendisligi-2024-taban-puanlari-ve-basari-siralamalari/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URL(tt.baseURL, "Bilgisayar Mühendisliği"); got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}
