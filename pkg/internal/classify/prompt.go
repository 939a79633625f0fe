package classify

import (
	"fmt"
	"strings"
)

const (
	// promptTextLimit caps the extracted text embedded in a document prompt.
	promptTextLimit = 2000

	documentSystemPrompt = "You are an expert document classifier. Analyze documents and classify them " +
		"into specific categories with high accuracy. Always respond with valid JSON only."

	imageSystemPrompt = "You are an expert image classifier. Analyze images and classify them into " +
		"appropriate categories. Always respond with valid JSON only."
)

// documentCategories is the fixed vocabulary for the document path.
var documentCategories = []string{
	"resume", "invoice", "contract", "report", "presentation",
	"assignment", "receipt", "certificate", "manual", "form",
}

// imageCategories is the fixed vocabulary for the image path.
var imageCategories = []string{
	"screenshot", "photo", "diagram", "chart", "document-scan",
	"receipt", "id-card", "certificate", "artwork", "meme", "social-media",
}

// buildDocumentPrompt embeds the file name and the first promptTextLimit
// characters of extracted text.
func buildDocumentPrompt(fileName, content string) string {
	content = truncateText(content, promptTextLimit)

	categories := strings.Join(documentCategories, ", ")

	return fmt.Sprintf(`
Analyze this document and classify it into one of these categories: %s

Document filename: %s
Document content (first %d characters):
%s

Respond with ONLY a JSON object in this exact format:
{
  "category": "one of the predefined categories",
  "confidence": 0.95,
  "subcategory": "specific subcategory if applicable",
  "suggestedFolder": "suggested folder path",
  "reasoning": "brief explanation of classification"
}

Requirements:
- confidence should be between 0.0 and 1.0
- category must be one of: %s
- suggestedFolder should follow the pattern: Category/Subcategory
- reasoning should be 1-2 sentences explaining why
`, categories, fileName, promptTextLimit, content, categories)
}

// buildImagePrompt asks for the same JSON shape with an Images/CategoryName
// folder pattern.
func buildImagePrompt(fileName string) string {
	return fmt.Sprintf(`
Analyze this image and classify it into an appropriate category.

Image filename: %s

Common image categories: %s

Respond with ONLY a JSON object in this exact format:
{
  "category": "most appropriate category",
  "confidence": 0.95,
  "subcategory": "specific subcategory if applicable",
  "suggestedFolder": "Images/CategoryName",
  "reasoning": "brief explanation of what you see"
}
`, fileName, strings.Join(imageCategories, ", "))
}
