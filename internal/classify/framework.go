package classify

// Framework is the full strategic classification of one document. It is a
// value object derived deterministically from the extracted text.
type Framework struct {
	Intents []string            `json:"intents"`
	SWOT    map[string][]string `json:"swot"`
	PESTLE  map[string]string   `json:"pestle"`
	Porters map[string]string   `json:"porters"`
}

// Analyze runs all classifiers over the text.
func Analyze(text string) Framework {
	return Framework{
		Intents: Intents(text),
		SWOT:    SWOT(text),
		PESTLE:  PESTLE(text),
		Porters: Porters(text),
	}
}
