// Package wordcloud renders (word, count) pairs as a PNG word cloud.
package wordcloud

import (
	"fmt"
	"image/color"
	"image/png"
	"os"

	"github.com/DrJoeShmo/bigdataclass2018/models"
	"github.com/psykhi/wordclouds"
)

// MaxWords caps how many words go into a cloud; more than this renders mush.
const MaxWords = 100

// palette is the fixed 4-color scheme used for every cloud.
var palette = []color.Color{
	color.RGBA{0x1b, 0x9e, 0x77, 0xff},
	color.RGBA{0xd9, 0x5f, 0x02, 0xff},
	color.RGBA{0x75, 0x70, 0xb3, 0xff},
	color.RGBA{0xe7, 0x29, 0x8a, 0xff},
}

// Options configures a render.
type Options struct {
	FontFile string
	Width    int
	Height   int
}

// Render draws the top words (already sorted; extra entries beyond MaxWords
// are ignored) and writes a PNG to outPath.
func Render(counts []models.WordCount, opts Options, outPath string) error {
	if opts.FontFile == "" {
		return fmt.Errorf("word cloud rendering needs a TTF font (set font in config or pass --font)")
	}
	if len(counts) == 0 {
		return fmt.Errorf("no words to render")
	}
	if len(counts) > MaxWords {
		counts = counts[:MaxWords]
	}

	width := opts.Width
	if width <= 0 {
		width = 2048
	}
	height := opts.Height
	if height <= 0 {
		height = 2048
	}

	wordList := make(map[string]int, len(counts))
	for _, wc := range counts {
		wordList[wc.Word] = wc.Count
	}

	cloud := wordclouds.NewWordcloud(
		wordList,
		wordclouds.FontFile(opts.FontFile),
		wordclouds.FontMaxSize(300),
		wordclouds.FontMinSize(10),
		wordclouds.Colors(palette),
		wordclouds.BackgroundColor(color.White),
		wordclouds.Width(width),
		wordclouds.Height(height),
	)
	img := cloud.Draw()

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
