package invoice

import (
	"context"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/dh139/cafef/models"
)

// Renderer fills the invoice HTML template with an order and converts the
// result to PDF. The template is an external, versioned asset carrying the
// placeholders {{date}}, {{items}} and {{totalAmount}}.
type Renderer struct {
	TemplatePath string
	Converter    Converter
}

func NewRenderer(templatePath string, converter Converter) *Renderer {
	return &Renderer{TemplatePath: templatePath, Converter: converter}
}

// Render produces the PDF bytes for a finalized order. The order is read
// only, never mutated. Template and converter failures come back as
// ErrRender with the cause attached.
func (r *Renderer) Render(ctx context.Context, order models.Order) ([]byte, error) {
	tmpl, err := os.ReadFile(r.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: read template: %v", ErrRender, err)
	}

	var rows strings.Builder
	for _, line := range order.Lines {
		rows.WriteString(fmt.Sprintf(`
            <tr>
                <td>%s</td>
                <td>%d</td>
                <td>₹%.2f</td>
            </tr>`, html.EscapeString(line.Name), line.Quantity, line.Price))
	}

	doc := string(tmpl)
	doc = strings.Replace(doc, "{{date}}", time.Now().Format("1/2/2006, 3:04:05 PM"), 1)
	doc = strings.Replace(doc, "{{items}}", rows.String(), 1)
	doc = strings.Replace(doc, "{{totalAmount}}", fmt.Sprintf("₹%.2f", order.Total), 1)

	pdf, err := r.Converter.Convert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: convert: %v", ErrRender, err)
	}
	return pdf, nil
}
