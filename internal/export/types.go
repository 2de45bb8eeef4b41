// Package export models a Zabbix template export document.
package export

import "gopkg.in/yaml.v3"

// Document is the root of a template export file.
type Document struct {
	Export TemplateExport `yaml:"zabbix_export"`
}

// TemplateExport holds the exported templates in document order.
type TemplateExport struct {
	Templates []Template `yaml:"templates"`
}

// Template is one exported monitoring template.
type Template struct {
	Name           string          `yaml:"template"`
	Description    string          `yaml:"description"`
	Items          []Item          `yaml:"items"`
	Triggers       []Trigger       `yaml:"triggers"`
	Macros         []Macro         `yaml:"macros"`
	DiscoveryRules []DiscoveryRule `yaml:"discovery_rules"`
}

// Item is a monitored item. The same shape is used for item
// prototypes under a discovery rule.
type Item struct {
	Name        string    `yaml:"name"`
	Key         string    `yaml:"key"`
	Type        Scalar    `yaml:"type"`
	ValueType   Scalar    `yaml:"value_type"`
	Units       string    `yaml:"units"`
	Description string    `yaml:"description"`
	Triggers    []Trigger `yaml:"triggers"`
}

// Trigger is an alert definition, declared either on the template or
// nested under an item. The same shape is used for trigger prototypes.
type Trigger struct {
	Name        string `yaml:"name"`
	Expression  string `yaml:"expression"`
	Priority    Scalar `yaml:"priority"`
	Description string `yaml:"description"`
}

// Macro is a user macro attached to a template.
type Macro struct {
	Macro       string `yaml:"macro"`
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
}

// DiscoveryRule is a low-level discovery rule with its prototypes.
type DiscoveryRule struct {
	Name              string    `yaml:"name"`
	Key               string    `yaml:"key"`
	Description       string    `yaml:"description"`
	ItemPrototypes    []Item    `yaml:"item_prototypes"`
	TriggerPrototypes []Trigger `yaml:"trigger_prototypes"`
}

// Scalar is a text field that older exports may encode as a number.
// Any YAML scalar decodes to its text form; non-scalar nodes decode
// to empty text rather than failing the whole document.
type Scalar string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*s = ""
		return nil
	}
	*s = Scalar(node.Value)
	return nil
}

func (s Scalar) String() string { return string(s) }
