package script

// ToneDescription maps a tone value (0.0 = humorous, 1.0 = informative) to
// a human-readable label.
func ToneDescription(tone float64) string {
	switch {
	case tone < 0.2:
		return "Very Humorous/Memey"
	case tone < 0.4:
		return "Humorous with Some Info"
	case tone < 0.6:
		return "Balanced"
	case tone < 0.8:
		return "Informative with Some Fun"
	default:
		return "Very Informative/Educational"
	}
}

// toneModifier returns the detailed prompt instructions for the tone band.
func toneModifier(tone float64) string {
	switch {
	case tone < 0.2:
		return `TONE: VERY HUMOROUS/MEMEY (Focus: Entertainment & Virality)
- Use internet slang, memes, and trending phrases heavily
- Focus on entertainment over education
- Use humor, jokes, and funny comparisons
- Reference popular culture and viral trends extensively
- Use casual, Gen-Z friendly language
- Priority: 90% fun/engagement, 10% information`
	case tone < 0.4:
		return `TONE: HUMOROUS (Focus: Fun with Some Useful Info)
- Balance entertainment with some useful information
- Use casual, friendly language with regular humor
- Make facts entertaining and easy to digest
- Keep it light-hearted but somewhat informative
- Priority: 70% entertainment, 30% information`
	case tone < 0.6:
		return `TONE: BALANCED (Focus: Equal Entertainment & Information)
- Mix entertainment and information equally
- Use conversational but informative tone
- Include both fun facts and useful information
- Use relatable examples with moderate humor
- Priority: 50% entertainment, 50% information`
	case tone < 0.8:
		return `TONE: INFORMATIVE (Focus: Educational with Engagement)
- Focus on providing valuable, actionable information
- Use clear, educational language that's still engaging
- Include facts, tips, and useful insights
- Use professional but friendly tone
- Priority: 70% information, 30% entertainment`
	default:
		return `TONE: VERY INFORMATIVE/EDUCATIONAL (Focus: Deep Knowledge)
- Focus entirely on educational, valuable content
- Use professional, authoritative language
- Include detailed facts, statistics, and expert insights
- Prioritize accuracy and depth of information
- Priority: 90% information, 10% engagement`
	}
}
