package ui

import "testing"

func envFrom(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestSystemLanguage(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected string
	}{
		{"empty", map[string]string{}, LangEnglish},
		{"C locale", map[string]string{"LANG": "C"}, LangEnglish},
		{"italian utf8", map[string]string{"LANG": "it_IT.UTF-8"}, LangItalian},
		{"italian swiss", map[string]string{"LANG": "it_CH"}, LangItalian},
		{"euro modifier", map[string]string{"LANG": "it_IT@euro"}, LangItalian},
		{"LC_ALL wins", map[string]string{"LC_ALL": "en_US.UTF-8", "LANG": "it_IT.UTF-8"}, LangEnglish},
		{"LC_MESSAGES before LANG", map[string]string{"LC_MESSAGES": "it_IT", "LANG": "en_GB"}, LangItalian},
		{"unsupported falls back", map[string]string{"LANG": "ja_JP.UTF-8"}, LangEnglish},
		{"garbage", map[string]string{"LANG": "!!"}, LangEnglish},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := SystemLanguage(envFrom(test.env)); got != test.expected {
				t.Errorf("SystemLanguage() = %s, expected %s", got, test.expected)
			}
		})
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()
	l.getenv = envFrom(map[string]string{"LANG": "it_IT.UTF-8"})

	l.SetLanguage(LangSystem)
	if l.GetCurrentLanguage() != LangItalian {
		t.Fatalf("expected system language %s, got %s", LangItalian, l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyReady); got != "Pronto" {
		t.Errorf("expected Italian text, got %q", got)
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != LangItalian {
		t.Errorf("unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage(LangEnglish)
	if got := l.GetText(KeyStatusError); got != "ERROR: See Log for Details" {
		t.Errorf("unexpected English text %q", got)
	}
	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("missing key should return itself, got %q", got)
	}
}

func TestLocalization_TablesComplete(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts[LangEnglish] {
		if _, ok := l.texts[LangItalian][key]; !ok {
			t.Errorf("Italian table lacks %q", key)
		}
	}
	for key := range l.texts[LangItalian] {
		if _, ok := l.texts[LangEnglish][key]; !ok {
			t.Errorf("English table lacks %q", key)
		}
	}
}
