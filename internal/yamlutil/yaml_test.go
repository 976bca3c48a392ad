package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-carousel/internal/yamlutil"
)

type testDeck struct {
	Title  string   `yaml:"title"`
	Slides []string `yaml:"slides"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("valid YAML", func(t *testing.T) {
		var d testDeck
		data := []byte("title: Hello\nslides:\n  - one\n  - two")
		if err := yamlutil.Unmarshal(data, &d); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if d.Title != "Hello" {
			t.Errorf("Title = %q, want %q", d.Title, "Hello")
		}
		if len(d.Slides) != 2 {
			t.Errorf("Slides = %d entries, want 2", len(d.Slides))
		}
	})

	t.Run("nil data", func(t *testing.T) {
		var d testDeck
		if err := yamlutil.Unmarshal(nil, &d); !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		if err := yamlutil.Unmarshal([]byte("a: 1"), nil); !errors.Is(err, yamlutil.ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		var d testDeck
		data := []byte("title: " + strings.Repeat("x", yamlutil.MaxInputSize))
		if err := yamlutil.Unmarshal(data, &d); !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("malformed YAML", func(t *testing.T) {
		var d testDeck
		if err := yamlutil.Unmarshal([]byte("title: [unclosed"), &d); err == nil {
			t.Error("Unmarshal() error = nil, want parse error")
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields pass", func(t *testing.T) {
		var d testDeck
		if err := yamlutil.UnmarshalStrict([]byte("title: ok"), &d); err != nil {
			t.Errorf("UnmarshalStrict() error = %v", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		var d testDeck
		if err := yamlutil.UnmarshalStrict([]byte("titel: typo"), &d); err == nil {
			t.Error("UnmarshalStrict() error = nil, want unknown-field error")
		}
	})
}
