package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.yaml")

	yaml := `zabbix_export:
  templates:
    - template: Linux by agent
      description: Collects base OS metrics.
      items:
        - name: CPU load
          key: system.cpu.load
          type: 0
          value_type: 3
          units: ""
          description: One minute load average.
          triggers:
            - name: High load
              expression: last(/host/system.cpu.load)>5
              priority: 4
      triggers:
        - name: Agent unreachable
          expression: nodata(/host/agent.ping,5m)=1
          priority: high
      macros:
        - macro: "{$LOAD_MAX}"
          value: "5"
      discovery_rules:
        - name: Mounted filesystems
          key: vfs.fs.discovery
          item_prototypes:
            - name: "Free space on {#FSNAME}"
              key: "vfs.fs.size[{#FSNAME},free]"
          trigger_prototypes:
            - name: "Low space on {#FSNAME}"
              expression: "last(/host/vfs.fs.size[{#FSNAME},pfree])<10"
`

	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(doc.Export.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(doc.Export.Templates))
	}

	tpl := doc.Export.Templates[0]
	if tpl.Name != "Linux by agent" {
		t.Fatalf("unexpected template name %q", tpl.Name)
	}
	if len(tpl.Items) != 1 || tpl.Items[0].Key != "system.cpu.load" {
		t.Fatalf("unexpected items: %+v", tpl.Items)
	}
	if got := tpl.Items[0].Type.String(); got != "0" {
		t.Fatalf("expected numeric type coerced to %q, got %q", "0", got)
	}
	if got := tpl.Items[0].ValueType.String(); got != "3" {
		t.Fatalf("expected numeric value_type coerced to %q, got %q", "3", got)
	}
	if len(tpl.Items[0].Triggers) != 1 {
		t.Fatalf("expected 1 nested trigger, got %d", len(tpl.Items[0].Triggers))
	}
	if got := tpl.Items[0].Triggers[0].Priority.String(); got != "4" {
		t.Fatalf("expected numeric priority coerced to %q, got %q", "4", got)
	}
	if got := tpl.Triggers[0].Priority.String(); got != "high" {
		t.Fatalf("expected text priority kept as %q, got %q", "high", got)
	}
	if len(tpl.Macros) != 1 || tpl.Macros[0].Macro != "{$LOAD_MAX}" {
		t.Fatalf("unexpected macros: %+v", tpl.Macros)
	}

	if len(tpl.DiscoveryRules) != 1 {
		t.Fatalf("expected 1 discovery rule, got %d", len(tpl.DiscoveryRules))
	}
	rule := tpl.DiscoveryRules[0]
	if len(rule.ItemPrototypes) != 1 || len(rule.TriggerPrototypes) != 1 {
		t.Fatalf("unexpected prototypes: %+v", rule)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseAbsentFields(t *testing.T) {
	doc, err := Parse([]byte(`zabbix_export:
  templates:
    - template: Bare
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tpl := doc.Export.Templates[0]
	if tpl.Description != "" {
		t.Fatalf("expected empty description, got %q", tpl.Description)
	}
	if len(tpl.Items) != 0 || len(tpl.Triggers) != 0 || len(tpl.Macros) != 0 || len(tpl.DiscoveryRules) != 0 {
		t.Fatalf("expected empty collections: %+v", tpl)
	}
}

func TestParseNonScalarCoercesToEmpty(t *testing.T) {
	doc, err := Parse([]byte(`zabbix_export:
  templates:
    - template: Odd
      items:
        - name: odd item
          type: [7]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := doc.Export.Templates[0].Items[0].Type.String(); got != "" {
		t.Fatalf("expected non-scalar type to coerce to empty text, got %q", got)
	}
}
