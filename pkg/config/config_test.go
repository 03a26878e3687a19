package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-futura/futura/pkg/errors"
)

func resetGlobal(t *testing.T) {
	t.Helper()
	mu.Lock()
	current, initialized = Default(), false
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		current, initialized = Default(), false
		mu.Unlock()
	})
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
blink_period: 250ms
click_window: 300ms
label_update_rate: 4
title_case: true
word_modifier: alt
`)
	got, err := Parse(data, ".yaml")
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.BlinkPeriod = Duration(250 * time.Millisecond)
	want.ClickWindow = Duration(300 * time.Millisecond)
	want.LabelUpdateRate = 4
	want.TitleCase = true
	want.WordModifier = "alt"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
blink_enabled = false
history_limit = 8
max_length = 20
click_slop = 2.5
`)
	got, err := Parse(data, ".toml")
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.BlinkEnabled = false
	want.HistoryLimit = 8
	want.MaxLength = 20
	want.ClickSlop = 2.5
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
	}{
		{"bad duration", "blink_period: soon", ".yaml"},
		{"negative rate", "entry_update_rate = -1", ".toml"},
		{"bad modifier", "word_modifier: shift", ".yaml"},
		{"unknown format", "{}", ".json"},
		{"malformed toml", "history_limit = [", ".toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.ext)
			var fe *errors.FuturaError
			if !stderrors.As(err, &fe) || fe.Kind != errors.KindConfig {
				t.Errorf("Parse() error = %v, want config error", err)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	s := Default()
	s.ClickWindow = Duration(time.Second)
	for _, ext := range []string{".yaml", ".toml"} {
		data, err := Encode(s, ext)
		if err != nil {
			t.Fatalf("Encode(%s) error = %v", ext, err)
		}
		got, err := Parse(data, ext)
		if err != nil {
			t.Fatalf("Parse(%s) error = %v", ext, err)
		}
		if diff := cmp.Diff(s, got); diff != "" {
			t.Errorf("%s round trip mismatch (-want +got):\n%s", ext, diff)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "futura.yml")
	if err := os.WriteFile(path, []byte("history_limit: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil || s.HistoryLimit != 3 {
		t.Errorf("Load() = %+v, %v", s, err)
	}

	s, err = LoadOptional(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if diff := cmp.Diff(Default(), s); diff != "" {
		t.Errorf("LoadOptional() mismatch (-want +got):\n%s", diff)
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestInitOnce(t *testing.T) {
	resetGlobal(t)
	if diff := cmp.Diff(Default(), Current()); diff != "" {
		t.Errorf("Current() before Init mismatch (-want +got):\n%s", diff)
	}
	first := Default()
	first.MaxLength = 10
	if !Init(first) {
		t.Fatal("first Init() = false")
	}
	second := Default()
	second.MaxLength = 99
	if Init(second) {
		t.Error("second Init() = true")
	}
	if Current().MaxLength != 10 {
		t.Errorf("Current().MaxLength = %d, want 10", Current().MaxLength)
	}
}
