package chatbot

import "strings"

type rule struct {
	keyword  string
	response string
}

// fallbackRules is scanned in order; the first keyword found in the message
// wins, so "weather" beats "pest" when both appear.
var fallbackRules = []rule{
	{"weather", "Check the weather section on your dashboard for current conditions and forecasts. Plan your farming activities based on upcoming rain predictions."},
	{"irrigation", "Irrigation timing depends on your crop type and soil moisture. Generally, irrigate during early morning or evening. Use drip irrigation for water efficiency."},
	{"fertilizer", "Apply fertilizers based on soil test results. Use organic compost, NPK fertilizers in recommended doses, and split applications for better results."},
	{"pest", "For pest control, use integrated pest management (IPM). Monitor regularly, use biological controls when possible, and apply pesticides only when necessary."},
	{"soil", "Maintain soil health through crop rotation, adding organic matter, proper drainage, and regular soil testing. pH should be 6.0-7.5 for most crops."},
	{"harvest", "Harvest crops at the right maturity stage. Check for color, moisture content, and texture. Early morning is usually the best time for harvesting."},
	{"seed", "Use certified seeds from reliable sources. Treat seeds before sowing to prevent diseases. Store seeds in cool, dry places."},
}

const (
	matchedNote = "This is a basic response. Configure OpenAI API key for advanced AI responses."

	genericResponse = "I can help you with farming questions about crops, weather, irrigation, fertilizers, pest control, " +
		"soil management, and harvesting. Please ask a specific question!"
	genericNote = "Configure OpenAI API key in .env for advanced AI responses."
)

// Keywords returns the fallback keywords in match order.
func Keywords() []string {
	out := make([]string, 0, len(fallbackRules))
	for _, r := range fallbackRules {
		out = append(out, r.keyword)
	}
	return out
}

// Fallback answers from the canned keyword table.
func Fallback(message string) *Answer {
	lower := strings.ToLower(message)

	for _, r := range fallbackRules {
		if strings.Contains(lower, r.keyword) {
			return fallbackAnswer(r.response, matchedNote)
		}
	}
	return fallbackAnswer(genericResponse, genericNote)
}

func fallbackAnswer(response, note string) *Answer {
	return &Answer{
		Response: response,
		Success:  true,
		Source:   SourceFallback,
		Fallback: true,
		Note:     note,
	}
}
