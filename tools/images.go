package tools

const defaultStyle = "modern"

// promptPreviewLen bounds how much of the prompt gets appended to the URL.
const promptPreviewLen = 20

const imageCount = 3

var imageStyles = map[string]string{
	"modern":  "https://via.placeholder.com/800x800/6366F1/FFFFFF?text=Modern",
	"vintage": "https://via.placeholder.com/800x800/F59E0B/FFFFFF?text=Vintage",
	"minimal": "https://via.placeholder.com/800x800/94A3B8/FFFFFF?text=Minimal",
	"bold":    "https://via.placeholder.com/800x800/EF4444/FFFFFF?text=Bold",
	"nature":  "https://via.placeholder.com/800x800/10B981/FFFFFF?text=Nature",
	"tech":    "https://via.placeholder.com/800x800/06B6D4/FFFFFF?text=Tech",
}

// PlaceholderImages resolves the style to its placeholder URL (modern when
// unrecognized) and returns three copies with the truncated prompt appended
// as extra query text. Deterministic, no error path.
func PlaceholderImages(prompt string, style string) []string {
	base, ok := imageStyles[style]
	if !ok {
		base = imageStyles[defaultStyle]
	}

	preview := prompt
	if r := []rune(prompt); len(r) > promptPreviewLen {
		preview = string(r[:promptPreviewLen])
	}

	images := make([]string, 0, imageCount)
	for i := 0; i < imageCount; i++ {
		images = append(images, base+"&text="+preview)
	}
	return images
}
