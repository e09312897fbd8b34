package script

const regularPrompt = `Create a viral short-form video script about "%s".

%s

TRENDING TOPICS: %s
VIRAL KEYWORDS: %s
HOOK EXAMPLES: %s
VIRAL FORMATS: %s

REQUIREMENTS:
- 45-120 seconds when spoken (approximately 100-250 words)
- ONLY include spoken words - NO visual descriptions, stage directions, or scene descriptions
- Strong hook in first 3 seconds that matches the tone setting
- Strong call-to-action at end
- Use trending keywords naturally
- Include emotional trigger (surprise, curiosity, urgency) appropriate for tone
- Write ONLY what should be spoken aloud by the narrator

FORBIDDEN - DO NOT INCLUDE:
- Visual descriptions like "video opens with", "cut to", "graphics appear"
- Stage directions like "[dramatic pause]", "[music builds]"
- Camera directions like "zoom in", "fade out"

RESPOND WITH ONLY THIS JSON FORMAT:
{"video_length": 35, "script_text": "Complete spoken script here - only words to be said aloud", "hook": "Opening hook", "main_points": ["point 1", "point 2", "point 3"], "cta": "Call to action", "trending_elements": ["element 1", "element 2"], "estimated_words": 90, "tone_applied": "%s"}

The script_text must contain ONLY spoken words that will be read by text-to-speech and MUST match the specified tone!`

const pdfPrompt = `Create a short-form video script summarizing a research document about "%s".

%s

DOCUMENT CONTENT (excerpt):
---
%s
---

MAIN INSIGHTS: %s
SURPRISING FACTS: %s
AUTHORS: %s

REQUIREMENTS:
- 45-120 seconds when spoken (approximately 100-250 words)
- Explain the document's key findings in simple, engaging terms
- Credit the authors naturally if known
- ONLY include spoken words - NO visual or stage directions
- Strong hook in first 3 seconds, strong call-to-action at the end

RESPOND WITH ONLY THIS JSON FORMAT:
{"video_length": 45, "script_text": "Complete spoken script here", "hook": "Opening hook", "main_points": ["point 1", "point 2", "point 3"], "cta": "Call to action", "trending_elements": [], "estimated_words": 110, "tone_applied": "%s"}

The script_text must contain ONLY spoken words that will be read by text-to-speech!`
