package search

import "fmt"

// FocusPatents requests patent-specific results; any other focus value asks
// for general technical information.
const FocusPatents = "patents"

// systemPrompt frames every search request.
const systemPrompt = "You are a patent research assistant."

// BuildPrompt constructs the natural-language prompt for a search. The
// patent focus asks for specific identifiers, jurisdictions, dates and
// differentiation, limited to the most relevant 3-5 results.
func BuildPrompt(query, focus string) string {
	if focus == FocusPatents {
		return fmt.Sprintf(`Search for patents and prior art related to: %s

Please provide:
1. Specific US patent numbers (format: US 1,234,567)
2. International patents (PCT, EPO, CN, JP)
3. Publication dates
4. Brief description of the technical approach
5. Key differences from the query

Focus on the most relevant 3-5 patents.`, query)
	}
	return fmt.Sprintf("Search for technical information about: %s", query)
}
