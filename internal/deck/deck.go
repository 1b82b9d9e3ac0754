package deck

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/swipequiz/internal/model"
)

// Read-only deck source. The sample deck ships inside the binary;
// a local file can replace it. Nothing is ever written back.

var (
	ErrEmptyDeck         = errors.New("deck has no questions")
	ErrUnsupportedFormat = errors.New("unsupported deck format")
)

//go:embed questions.yaml
var sampleDeck []byte

var defaultDeck = mustParse(sampleDeck)

func mustParse(b []byte) []model.Question {
	qs, err := decode(b, ".yaml")
	if err != nil {
		panic(fmt.Sprintf("embedded deck: %v", err))
	}
	return qs
}

// Default returns a copy of the embedded ten-question sample deck.
func Default() []model.Question {
	out := make([]model.Question, len(defaultDeck))
	copy(out, defaultDeck)
	return out
}

// Load reads a deck from a .json, .yaml or .yml file.
// An empty path yields the sample deck.
func Load(path string) ([]model.Question, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	qs, err := decode(b, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return qs, nil
}

func decode(b []byte, ext string) ([]model.Question, error) {
	var qs []model.Question
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(b, &qs); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &qs); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if len(qs) == 0 {
		return nil, ErrEmptyDeck
	}
	for i := range qs {
		qs[i].Text = strings.TrimSpace(qs[i].Text)
		qs[i].Category = strings.TrimSpace(qs[i].Category)
	}
	return qs, nil
}
