// Package prompt builds the fixed prompts sent to upstream LLM providers.
package prompt

import "fmt"

// BrandAnalysis returns the analysis prompt for a brand in a category.
// Every provider sends the same prompt so their responses stay comparable.
func BrandAnalysis(brand, category string) string {
	categoryContext := "in their industry"
	if category != "" && category != "general" {
		categoryContext = fmt.Sprintf("in the %s industry/category", category)
	}

	return fmt.Sprintf(`Provide a comprehensive analysis of the following brand.

Brand: %s
Context: %s

Please provide a detailed report covering:
1. What the brand is known for
2. Key products or services
3. Market reputation and sentiment
4. Notable strengths and weaknesses

Keep your response professional, balanced, and informative. If you lack specific information about this brand, state that clearly.`, brand, categoryContext)
}

// Recommendation returns the recommendation-style prompt, phrased as a
// user asking for the best option in the category.
func Recommendation(brand, category string) string {
	categoryContext := "brand in this category"
	if category != "" && category != "general" {
		categoryContext = category
	}

	return fmt.Sprintf(`A user asks: "What is the best %s?"

Provide a helpful recommendation response. Discuss leading options and mention %s if it is a relevant and competitive choice in this space. Be balanced, objective, and informative.`, categoryContext, brand)
}
