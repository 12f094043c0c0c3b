package agentflow

import "strings"

// Spec is the static configuration of one specialist agent: identity,
// model instructions, sampling temperature, and the tool service it
// queries for domain facts.
type Spec struct {
	Name         string
	Description  string
	Instructions string
	Temperature  float32
	Endpoint     string
	ToolOp       string
}

// Endpoints are the per-specialist tool service URLs, usually from config.
type Endpoints struct {
	Billing string
	Roaming string
	Tariff  string
	Faq     string
}

// Catalog is the explicit, enumerated set of known specialists. Routing
// tags coming from the model are resolved against it; anything it does not
// contain is a no-match, never an error.
type Catalog struct {
	specs []Spec
}

func NewCatalog(specs []Spec) *Catalog {
	return &Catalog{specs: specs}
}

// DefaultCatalog wires the four telco specialists to their tool endpoints.
func DefaultCatalog(eps Endpoints) *Catalog {
	return NewCatalog([]Spec{
		{
			Name:         "Billing",
			Description:  "Answers questions about the customer's bills, charges and subscriptions.",
			Instructions: billingInstructions,
			Temperature:  0.0,
			Endpoint:     eps.Billing,
			ToolOp:       "get_billing_data",
		},
		{
			Name:         "Roaming",
			Description:  "Answers questions about roaming rates and charges abroad.",
			Instructions: roamingInstructions,
			Temperature:  0.0,
			Endpoint:     eps.Roaming,
			ToolOp:       "get_roaming_rates",
		},
		{
			Name:         "Tariff",
			Description:  "Answers questions about available tariff plans and their prices.",
			Instructions: tariffInstructions,
			Temperature:  0.0,
			Endpoint:     eps.Tariff,
			ToolOp:       "get_tariff_plans",
		},
		{
			Name:         "Faq",
			Description:  "Answers general frequently asked questions about the service.",
			Instructions: faqInstructions,
			Temperature:  0.0,
			Endpoint:     eps.Faq,
			ToolOp:       "get_faq_data",
		},
	})
}

// Lookup resolves a routing tag to a specialist spec. The boolean is false
// for unknown or empty tags.
func (c *Catalog) Lookup(name string) (Spec, bool) {
	for _, spec := range c.specs {
		if spec.Name == name {
			return spec, true
		}
	}
	return Spec{}, false
}

// Describe renders the catalog as "name: description" lines for the
// planner's model invocation.
func (c *Catalog) Describe() string {
	var b strings.Builder
	for _, spec := range c.specs {
		b.WriteString("- ")
		b.WriteString(spec.Name)
		b.WriteString(": ")
		b.WriteString(spec.Description)
		b.WriteString("\n")
	}
	return b.String()
}
