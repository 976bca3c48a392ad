package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	carousel "github.com/alnah/go-carousel"
	"github.com/alnah/go-carousel/internal/yamlutil"
)

// Sentinel errors for deck handling.
var (
	ErrReadDeck       = errors.New("failed to read deck file")
	ErrDeckParse      = errors.New("failed to parse deck file")
	ErrEmptyDeck      = errors.New("deck has no slides")
	ErrReadBackground = errors.New("failed to read background image")
)

// Deck is the YAML input format: a carousel title plus content slides that
// share one background.
type Deck struct {
	Title      string      `yaml:"title"`
	Background string      `yaml:"background"`
	TextColor  string      `yaml:"text_color"`
	Canvas     *DeckCanvas `yaml:"canvas"`
	Slides     []DeckSlide `yaml:"slides"`
}

// DeckCanvas overrides the default canvas dimensions for the whole deck.
type DeckCanvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DeckSlide is one content slide. Heading and Content are both markdown; a
// per-slide background overrides the deck-wide one.
type DeckSlide struct {
	Heading    string `yaml:"heading"`
	Content    string `yaml:"content"`
	Background string `yaml:"background"`
}

// loadDeck reads and parses a YAML deck file. Unknown keys are rejected so a
// typo like "slide:" fails loudly instead of producing an empty carousel.
func loadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadDeck, err)
	}

	var deck Deck
	if err := yamlutil.UnmarshalStrict(data, &deck); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckParse, err)
	}

	if deck.Title == "" && len(deck.Slides) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDeck, path)
	}

	return &deck, nil
}

// text joins heading and content into one markdown block.
func (s DeckSlide) text() string {
	switch {
	case s.Heading == "":
		return s.Content
	case s.Content == "":
		return s.Heading
	default:
		return s.Heading + "\n\n" + s.Content
	}
}

// buildSlides turns a deck into library slides. A non-empty deck title becomes
// slide 1 on a title canvas. backgroundOverride, when set, wins over both the
// deck-wide and per-slide backgrounds.
func buildSlides(deck *Deck, canvas carousel.CanvasSpec, backgroundOverride string) ([]carousel.Slide, error) {
	deckBG, err := readBackground(firstNonEmpty(backgroundOverride, deck.Background))
	if err != nil {
		return nil, err
	}

	var slides []carousel.Slide
	if deck.Title != "" {
		titleCanvas := canvas
		titleCanvas.Title = true
		slides = append(slides, carousel.Slide{
			Text:       deck.Title,
			Canvas:     titleCanvas,
			Background: deckBG,
		})
	}

	for _, s := range deck.Slides {
		bg := deckBG
		if backgroundOverride == "" && s.Background != "" {
			bg, err = readBackground(s.Background)
			if err != nil {
				return nil, err
			}
		}
		slides = append(slides, carousel.Slide{
			Text:       strings.TrimSpace(s.text()),
			Canvas:     canvas,
			Background: bg,
		})
	}

	return slides, nil
}

// readBackground reads an image file into memory. An empty path means "use
// the renderer's default background" and yields nil bytes.
func readBackground(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadBackground, err)
	}
	return data, nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
