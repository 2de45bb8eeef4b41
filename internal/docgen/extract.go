package docgen

import (
	"context"

	"github.com/zbx-tools/zbxdoc/internal/export"
)

var (
	itemHeaders    = []string{"Name", "Key", "Type", "Value type", "Units", "Description"}
	triggerHeaders = []string{"Name", "Expression", "Priority", "Description"}
	macroHeaders   = []string{"Macro", "Value", "Description"}
	ruleHeaders    = []string{"Name", "Key", "Description"}
)

func (g *Generator) itemRows(ctx context.Context, items []export.Item) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Name,
			item.Key,
			item.Type.String(),
			item.ValueType.String(),
			item.Units,
			g.augmenter.Describe(ctx, item.Description),
		})
	}
	return rows
}

// triggerRows flattens a template's triggers into one list:
// item-nested triggers first (item order, then nested order), then
// template-level triggers. The lists are concatenated as declared,
// duplicates included.
func (g *Generator) triggerRows(ctx context.Context, tpl export.Template) [][]string {
	var rows [][]string
	for _, item := range tpl.Items {
		rows = append(rows, g.triggerRowsFrom(ctx, item.Triggers)...)
	}
	return append(rows, g.triggerRowsFrom(ctx, tpl.Triggers)...)
}

func (g *Generator) triggerRowsFrom(ctx context.Context, triggers []export.Trigger) [][]string {
	rows := make([][]string, 0, len(triggers))
	for _, trigger := range triggers {
		rows = append(rows, []string{
			trigger.Name,
			trigger.Expression,
			trigger.Priority.String(),
			g.augmenter.Describe(ctx, trigger.Description),
		})
	}
	return rows
}

func (g *Generator) macroRows(ctx context.Context, macros []export.Macro) [][]string {
	rows := make([][]string, 0, len(macros))
	for _, macro := range macros {
		rows = append(rows, []string{
			macro.Macro,
			macro.Value,
			g.augmenter.Describe(ctx, macro.Description),
		})
	}
	return rows
}

func (g *Generator) ruleRows(ctx context.Context, rules []export.DiscoveryRule) [][]string {
	rows := make([][]string, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, []string{
			rule.Name,
			rule.Key,
			g.augmenter.Describe(ctx, rule.Description),
		})
	}
	return rows
}
