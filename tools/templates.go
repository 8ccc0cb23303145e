package tools

import "strings"

const defaultPlatform = "instagram"
const defaultContentType = "post"

const minVariations = 3
const maxVariations = 5

// extraVariation pads short template lists so callers always get a usable
// set of options.
const extraVariation = "🚀 {topic}\n\nCheck out more on our profile! #trending"

// contentTemplates maps platform -> content type -> template list. The only
// placeholders are {topic} (substituted verbatim) and {tone} (lowercased).
// The strings must stay byte-identical to what existing clients expect.
var contentTemplates = map[string]map[string][]string{
	"instagram": {
		"post": {
			"✨ {topic}\n\nWhat's your take on this? Drop a comment below! 👇",
			"🎉 {topic}\n\nTag someone who needs to see this!",
			"💫 {topic}\n\nSave this for later! 📌",
		},
		"caption": {
			"Feeling {tone} about {topic} ✨",
			"{topic} - because you deserve it! 💪",
		},
		"story": {
			"{topic} ☀️",
			"Quick tip: {topic} 💡",
		},
	},
	"twitter": {
		"post": {
			"{topic}\n\n🧵 Thread below 👇",
			"Hot take: {topic} 🔥",
		},
		"caption": {
			"{topic} (a thread) 🧵",
		},
		"thread": {
			"{topic}\n\n1/ Let's talk about this...",
		},
	},
	"linkedin": {
		"post": {
			"I'm excited to share my thoughts on {topic}.\n\nAs professionals, we should always strive to...\n\n#Business #Growth #Leadership",
			"Here's what I learned about {topic}:\n\n1. First insight\n2. Second insight\n3. Third insight\n\nWhat's your experience?",
		},
		"caption": {
			"{topic} - An important topic for our industry.",
		},
	},
	"facebook": {
		"post": {
			"We wanted to share some exciting news about {topic}!\n\nLet us know what you think in the comments!",
			"Question for our community: {topic}\n\nWe'd love to hear your thoughts!",
		},
	},
}

// GenerateVariations renders every template registered for the platform and
// content type. Unknown platforms fall back to instagram and unknown content
// types to the platform's "post" list, so every input produces output; there
// is no error path. Results keep template order and are capped at 5.
func GenerateVariations(platform string, contentType string, tone string, topic string) []string {
	byType, ok := contentTemplates[platform]
	if !ok {
		byType = contentTemplates[defaultPlatform]
	}
	templates, ok := byType[contentType]
	if !ok {
		templates = byType[defaultContentType]
	}

	variations := make([]string, 0, len(templates)+1)
	for _, template := range templates {
		variations = append(variations, renderTemplate(template, tone, topic))
	}

	if len(variations) < minVariations {
		variations = append(variations, renderTemplate(extraVariation, tone, topic))
	}
	if len(variations) > maxVariations {
		variations = variations[:maxVariations]
	}
	return variations
}

func renderTemplate(template string, tone string, topic string) string {
	out := strings.ReplaceAll(template, "{topic}", topic)
	return strings.ReplaceAll(out, "{tone}", strings.ToLower(tone))
}
