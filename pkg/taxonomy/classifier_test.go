package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/pkg/config"
)

func newTestClassifier() *Classifier {
	return NewClassifier(config.GetBuiltinPriorities())
}

func TestClassifyTierOne(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify(&ent.Startup{
		Name:        "AgentForge",
		Description: "A multi-agent orchestration platform for enterprises",
	})

	assert.Contains(t, res.Categories, config.CategoryAgenticPlatformEnabler)
	assert.Equal(t, 1, res.Tier)
	assert.Equal(t, 100, res.BaseScore)
}

func TestClassifyAllOfTrigger(t *testing.T) {
	c := newTestClassifier()

	// "talent" and "ai" both present but as separate words, no any_of phrase.
	res := c.Classify(&ent.Startup{
		Name:        "TalentLoop",
		Description: "We match talent to roles using ai models",
	})
	assert.Contains(t, res.Categories, config.CategoryAgenticHR)

	// Only "talent" present.
	res = c.Classify(&ent.Startup{
		Name:        "TalentLoop",
		Description: "A marketplace for creative talent",
	})
	assert.NotContains(t, res.Categories, config.CategoryAgenticHR)
}

func TestClassifyMultipleCategories(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify(&ent.Startup{
		Name:        "ClaimsPilot",
		Description: "Claims automation for insurance carriers using machine learning",
	})

	assert.Equal(t, []string{
		config.CategoryAgenticClaims,
		config.CategoryInsuranceTech,
		config.CategoryGeneralAIML,
	}, res.Categories, "categories keep taxonomy order")
	assert.Equal(t, 2, res.Tier, "best tier wins")
	assert.Equal(t, 85, res.BaseScore, "highest score wins")
}

func TestClassifyUncategorized(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify(&ent.Startup{
		Name:        "BrickWorks",
		Description: "We sell reclaimed bricks to builders",
	})

	assert.Equal(t, []string{config.CategoryUncategorized}, res.Categories)
	assert.Equal(t, UncategorizedTier, res.Tier)
	assert.Equal(t, 30, res.BaseScore)
}

func TestClassifyMatchesTopicsAndTechStack(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify(&ent.Startup{
		Name:        "Quietly Named Co",
		Description: "Workflow software",
		Topics:      []string{"DevOps"},
	})
	assert.Contains(t, res.Categories, config.CategoryDevIntegration)
}

func TestClassifyWordBoundaryAIPhrase(t *testing.T) {
	c := newTestClassifier()

	// " ai " must not fire on substrings like "maintain".
	res := c.Classify(&ent.Startup{
		Name:        "FixItAll",
		Description: "We maintain industrial chains",
	})
	assert.NotContains(t, res.Categories, config.CategoryGeneralAIML)

	// But a standalone "ai" token does fire, including at text boundaries.
	res = c.Classify(&ent.Startup{
		Name:        "Opsly",
		Description: "Incident response powered by ai",
	})
	assert.Contains(t, res.Categories, config.CategoryGeneralAIML)
}

func TestTierOf(t *testing.T) {
	c := newTestClassifier()

	assert.Equal(t, 1, c.TierOf(config.CategoryAgenticPlatformEnabler))
	assert.Equal(t, 5, c.TierOf(config.CategoryGeneralAIML))
	assert.Equal(t, UncategorizedTier, c.TierOf("no_such_category"))
}
