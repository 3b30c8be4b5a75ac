package assistant

import (
	"fmt"
	"strings"

	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
)

const promptTemplate = `You are an expert mobile phone salesperson for "MobiTech Elite".

Product Context (Our Catalog):
%s

User asks: %s

Provide a helpful, professional response. Suggest specific models from the catalog if relevant. Use bullet points for specs. Use search grounding if you need current info about new releases not in context.`

// catalogContext renders one "<brand> <name>: $<price>. <description>" line
// per product.
func catalogContext(products []domain.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s %s: %s. %s", p.Brand, p.Name, formatPrice(p.Price), p.Description))
	}
	return strings.Join(lines, "\n")
}

// formatPrice drops trailing zero cents so 1199 renders as "$1199".
func formatPrice(m domain.Money) string {
	return "$" + m.Amount.String()
}

func buildPrompt(question string, products []domain.Product) string {
	return fmt.Sprintf(promptTemplate, catalogContext(products), question)
}

// citedSources keeps the sources that carry both a title and a URI.
func citedSources(sources []Source) []Source {
	var out []Source
	for _, s := range sources {
		if s.Title != "" && s.URI != "" {
			out = append(out, s)
		}
	}
	return out
}

// withSources appends a markdown list of the web pages the answer was grounded on.
func withSources(text string, sources []Source) string {
	if len(sources) == 0 {
		return text
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n**Web Sources:**")
	for _, s := range sources {
		fmt.Fprintf(&b, "\n* [%s](%s)", s.Title, s.URI)
	}
	return b.String()
}
