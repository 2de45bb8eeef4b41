// Package docgen turns a parsed template export into a Markdown
// document.
package docgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/zbx-tools/zbxdoc/internal/export"
	"github.com/zbx-tools/zbxdoc/internal/markdown"
	"github.com/zbx-tools/zbxdoc/internal/translate"
)

// Generator renders export documents. Descriptions pass through the
// augmenter at extraction time; cells are sanitized only by the table
// renderer.
type Generator struct {
	augmenter *translate.Augmenter
}

// New builds a Generator. The augmenter is required; pass a disabled
// one to skip translation.
func New(augmenter *translate.Augmenter) *Generator {
	return &Generator{augmenter: augmenter}
}

// Generate renders every template in the document, in document order.
func (g *Generator) Generate(ctx context.Context, doc *export.Document) string {
	var b strings.Builder
	for _, tpl := range doc.Export.Templates {
		g.writeTemplate(ctx, &b, tpl)
	}
	return b.String()
}

func (g *Generator) writeTemplate(ctx context.Context, b *strings.Builder, tpl export.Template) {
	fmt.Fprintf(b, "# Template: %s\n\n", tpl.Name)

	if description := strings.TrimSpace(tpl.Description); description != "" {
		b.WriteString(markdown.Sanitize(g.augmenter.Describe(ctx, description)) + "\n\n")
	}

	if rows := g.itemRows(ctx, tpl.Items); len(rows) > 0 {
		b.WriteString("## Items\n\n")
		b.WriteString(markdown.Table(itemHeaders, rows) + "\n\n")
	}

	if rows := g.triggerRows(ctx, tpl); len(rows) > 0 {
		b.WriteString("## Triggers\n\n")
		b.WriteString(markdown.Table(triggerHeaders, rows) + "\n\n")
	}

	if rows := g.macroRows(ctx, tpl.Macros); len(rows) > 0 {
		b.WriteString("## Macros\n\n")
		b.WriteString(markdown.Table(macroHeaders, rows) + "\n\n")
	}

	if rows := g.ruleRows(ctx, tpl.DiscoveryRules); len(rows) > 0 {
		b.WriteString("## Discovery rules\n\n")
		b.WriteString(markdown.Table(ruleHeaders, rows) + "\n\n")
		for _, rule := range tpl.DiscoveryRules {
			g.writePrototypes(ctx, b, rule)
		}
	}
}

// writePrototypes emits the per-rule prototype subsections directly
// after the discovery-rules table, in rule order.
func (g *Generator) writePrototypes(ctx context.Context, b *strings.Builder, rule export.DiscoveryRule) {
	if rows := g.itemRows(ctx, rule.ItemPrototypes); len(rows) > 0 {
		fmt.Fprintf(b, "### Item prototypes for discovery: %s\n\n", rule.Name)
		b.WriteString(markdown.Table(itemHeaders, rows) + "\n\n")
	}
	if rows := g.triggerRowsFrom(ctx, rule.TriggerPrototypes); len(rows) > 0 {
		fmt.Fprintf(b, "### Trigger prototypes for discovery: %s\n\n", rule.Name)
		b.WriteString(markdown.Table(triggerHeaders, rows) + "\n\n")
	}
}
