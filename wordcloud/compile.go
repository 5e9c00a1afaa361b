package wordcloud

// Compiler turns a word timeline into screens. It holds no per-call state;
// one Compiler may serve concurrent calls as long as its Measurer is safe for
// concurrent use (TextMeasurer is).
type Compiler struct {
	measurer Measurer
	opts     LayoutOptions
}

// NewCompiler binds a measurer and layout options. A nil measurer measures
// with EstimateSize.
func NewCompiler(m Measurer, opts LayoutOptions) *Compiler {
	if m == nil {
		m = NewEstimateMeasurer()
	}
	return &Compiler{measurer: m, opts: opts.WithDefaults()}
}

// ComputeAllScreens groups words and lays out every group.
func (c *Compiler) ComputeAllScreens(words []WordTiming, canvasWidth, canvasHeight, gapThreshold float64, maxWordsPerGroup int) []ComputedScreen {
	groups := DetectGroups(words, gapThreshold, maxWordsPerGroup)
	tiers := ResolveAuthoring(words).Tiers

	screens := make([]ComputedScreen, 0, len(groups))
	for i, g := range groups {
		screens = append(screens, ComputedScreen{
			Layout:     c.LayoutGroup(g.Words, i, tiers, canvasWidth, canvasHeight),
			StartTime:  g.StartTime,
			EndTime:    g.EndTime,
			GroupIndex: i,
		})
	}
	return screens
}

// LayoutGroup lays out one screen. tiers selects authored tiers or the
// scoring heuristic with the layout mode picked for groupIndex.
func (c *Compiler) LayoutGroup(words []WordTiming, groupIndex int, tiers Source, canvasWidth, canvasHeight float64) []PlacedWord {
	if len(words) == 0 {
		return []PlacedWord{}
	}
	var inputs []PackInput
	if tiers == Explicit {
		inputs = c.authoredInputs(words, canvasWidth)
	} else {
		inputs = c.scoredInputs(words, groupIndex, canvasWidth)
	}
	return Pack(c.measurer, inputs, canvasWidth, canvasHeight, c.opts)
}

func (c *Compiler) authoredInputs(words []WordTiming, canvasWidth float64) []PackInput {
	available := canvasWidth - c.opts.MarginX*2
	inputs := make([]PackInput, len(words))
	for i, w := range words {
		tier := authoredTier(w)
		desired := variedFontSize(c.opts.FontSize(tier), w.Word, i)
		inputs[i] = PackInput{
			Word:       w.Word,
			FontSize:   FitFontSize(c.measurer, w.Word, tier, desired, available, c.opts.MinFontSize),
			Tier:       tier,
			Importance: tier.importance(),
			Timestamp:  w.Start,
		}
	}
	return inputs
}

func (c *Compiler) scoredInputs(words []WordTiming, groupIndex int, canvasWidth float64) []PackInput {
	available := canvasWidth - c.opts.MarginX*2
	scores := make([]int, len(words))
	for i, w := range words {
		scores[i] = Score(w.Word, i, len(words))
	}
	tiers := PickLayoutMode(groupIndex, len(words)).AssignTiers(scores)

	inputs := make([]PackInput, len(words))
	for i, w := range words {
		inputs[i] = PackInput{
			Word:       w.Word,
			FontSize:   FitFontSize(c.measurer, w.Word, tiers[i], c.opts.FontSize(tiers[i]), available, c.opts.MinFontSize),
			Tier:       tiers[i],
			Importance: scores[i],
			Timestamp:  w.Start,
		}
	}
	return inputs
}

// ComputeAllScreens lays out words with the estimate measurer.
func ComputeAllScreens(words []WordTiming, canvasWidth, canvasHeight, gapThreshold float64, maxWordsPerGroup int, opts LayoutOptions) []ComputedScreen {
	return NewCompiler(nil, opts).ComputeAllScreens(words, canvasWidth, canvasHeight, gapThreshold, maxWordsPerGroup)
}
