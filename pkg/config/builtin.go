package config

// Built-in configuration: the priority taxonomy and the viability filter
// tables ship with the binary so the process runs without any YAML present.
// User-provided files in the config dir override these entry-by-entry.

// Category name constants. The taxonomy is data-driven; these constants exist
// so code that special-cases a category doesn't hardcode string literals.
const (
	CategoryAgenticPlatformEnabler = "agentic_platform_enabler"
	CategoryAgenticMarketing       = "agentic_marketing"
	CategoryAgenticClaims          = "agentic_claims"
	CategoryAgenticHR              = "agentic_hr"
	CategoryAgenticCustomerService = "agentic_customer_service"
	CategoryDevIntegration         = "dev_integration"
	CategoryInsuranceTech          = "insurance_tech"
	CategoryGeneralAIML            = "general_ai_ml"
	CategoryUncategorized          = "uncategorized"
)

// GetBuiltinPriorities returns the compiled-in priority taxonomy.
func GetBuiltinPriorities() *PriorityConfig {
	return &PriorityConfig{
		UncategorizedScore: 30,
		Categories: []CategoryConfig{
			{
				Name:  CategoryAgenticPlatformEnabler,
				Tier:  1,
				Score: 100,
				Triggers: []Trigger{
					{AnyOf: []string{
						"agentic platform", "agent framework", "multi-agent",
						"agent orchestration", "autonomous agents",
					}},
				},
			},
			{
				Name:  CategoryAgenticMarketing,
				Tier:  2,
				Score: 85,
				Triggers: []Trigger{
					{AnyOf: []string{
						"marketing automation", "content generation", "campaign automation",
					}},
				},
			},
			{
				Name:  CategoryAgenticClaims,
				Tier:  2,
				Score: 85,
				Triggers: []Trigger{
					{AnyOf: []string{
						"claims automation", "claims processing", "automated underwriting",
					}},
				},
			},
			{
				Name:  CategoryAgenticHR,
				Tier:  2,
				Score: 80,
				Triggers: []Trigger{
					{AnyOf: []string{"hr automation", "recruitment ai"}},
					{AllOf: []string{"talent", "ai"}},
				},
			},
			{
				Name:  CategoryAgenticCustomerService,
				Tier:  2,
				Score: 80,
				Triggers: []Trigger{
					{AnyOf: []string{"customer service ai", "support automation"}},
					{AllOf: []string{"chatbot", "enterprise"}},
				},
			},
			{
				Name:  CategoryDevIntegration,
				Tier:  3,
				Score: 75,
				Triggers: []Trigger{
					{AnyOf: []string{
						"code generation", "test automation", "legacy modernization", "devops",
					}},
				},
			},
			{
				Name:  CategoryInsuranceTech,
				Tier:  4,
				Score: 65,
				Triggers: []Trigger{
					{AnyOf: []string{"insurtech", "insurance", "policy", "actuarial"}},
				},
			},
			{
				// Catch-all for AI/ML mentions not covered above. Matched last.
				Name:  CategoryGeneralAIML,
				Tier:  5,
				Score: 50,
				Triggers: []Trigger{
					{AnyOf: []string{
						"artificial intelligence", "machine learning", "deep learning",
						"neural network", "generative ai", "llm", " ai ", "ai-powered",
					}},
				},
			},
		},
	}
}

// GetBuiltinViability returns the compiled-in provider-viability tables.
func GetBuiltinViability() *ViabilityConfig {
	return &ViabilityConfig{
		ExclusionPhrases: []string{
			"dating app", "dating platform", "matchmaking app",
			"food delivery", "restaurant delivery", "meal delivery",
			"social network", "social media platform",
			"consumer marketplace", "e-commerce platform",
			"mobile game", "gaming platform",
			"music streaming", "video streaming",
		},
		GateKeywords: []string{
			"b2b", "enterprise", "saas", "api", "platform",
			"insurance", "claim", "underwriting", "risk", "compliance",
			"devops", "integration", "automation", "developer tool",
		},
		ConfidenceThreshold: 70,
		Workers:             3,
	}
}
