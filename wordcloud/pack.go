package wordcloud

// PackInput is a word ready for packing: tier and font size are decided.
type PackInput struct {
	Word       string
	FontSize   float64
	Tier       Tier
	Importance int
	Timestamp  float64
}

type shelfWord struct {
	PackInput
	Size
	xInShelf float64
}

type shelf struct {
	height    float64
	usedWidth float64
	words     []shelfWord
}

// Pack places words in reading order onto rows ("shelves") and centers the
// result on the canvas.
//
// Each word goes onto the first shelf with room for it, preceded by a space
// of FontSize*SpacingRatio unless it opens the shelf. A word that fits on no
// shelf opens a new one, even when it is wider than the canvas on its own.
// Shelves are stacked without gaps, the stack is centered vertically and each
// shelf is centered horizontally. With opts.RTL the order inside a shelf is
// mirrored so the first word sits on the right.
func Pack(m Measurer, words []PackInput, canvasWidth, canvasHeight float64, opts LayoutOptions) []PlacedWord {
	opts = opts.WithDefaults()
	availableWidth := canvasWidth - opts.MarginX*2
	availableHeight := canvasHeight - opts.MarginY*2

	var shelves []*shelf
	for _, in := range words {
		w := shelfWord{PackInput: in, Size: m.Measure(in.Word, in.FontSize, in.Tier)}
		space := in.FontSize * opts.SpacingRatio

		placed := false
		for _, s := range shelves {
			need := w.Width
			if len(s.words) > 0 {
				need += space
			}
			if s.usedWidth+need > availableWidth {
				continue
			}
			w.xInShelf = s.usedWidth + need - w.Width
			s.words = append(s.words, w)
			s.usedWidth += need
			s.height = max(s.height, w.Height)
			placed = true
			break
		}
		if !placed {
			shelves = append(shelves, &shelf{
				height:    w.Height,
				usedWidth: w.Width,
				words:     []shelfWord{w},
			})
		}
	}

	var totalHeight float64
	for _, s := range shelves {
		totalHeight += s.height
	}

	out := make([]PlacedWord, 0, len(words))
	y := opts.MarginY + (availableHeight-totalHeight)/2
	for _, s := range shelves {
		offsetX := (availableWidth - s.usedWidth) / 2
		for _, w := range s.words {
			x := opts.MarginX + offsetX + w.xInShelf
			if opts.RTL {
				x = opts.MarginX + offsetX + (s.usedWidth - w.xInShelf - w.Width)
			}
			out = append(out, PlacedWord{
				Word:       w.Word,
				X:          x,
				Y:          y + (s.height-w.Height)/2,
				Width:      w.Width,
				Height:     w.Height,
				FontSize:   w.FontSize,
				Tier:       w.Tier,
				Importance: w.Importance,
				Timestamp:  w.Timestamp,
			})
		}
		y += s.height
	}
	return out
}
