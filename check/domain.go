package check

import (
	"context"

	"github.com/optimode/emailsyntax/internal/domaincache"
	"github.com/optimode/emailsyntax/internal/levenshtein"
	"github.com/optimode/emailsyntax/internal/parse"
	"github.com/optimode/emailsyntax/internal/syntax"
	"github.com/optimode/emailsyntax/types"
)

// DomainConfig is the domain checker configuration.
type DomainConfig struct {
	CheckTypos    bool
	TypoThreshold int
	// KnownProviders replaces the built-in provider list when non-empty.
	KnownProviders []string
}

// DomainChecker suggests corrections for domains that look like a typo of
// a well-known provider. It never fails a syntactically valid domain.
// Suggestions are memoized per domain, shared across concurrent checks.
type DomainChecker struct {
	cfg            DomainConfig
	knownProviders []string
	suggestions    *domaincache.Cache
}

// maxCachedDomains bounds the suggestion memo.
const maxCachedDomains = 10000

// defaultKnownProviders is the list of known major email providers.
// If the user's domain is within TypoThreshold distance from one of these,
// a suggestion is given (but the check does not fail).
var defaultKnownProviders = []string{
	"gmail.com", "googlemail.com",
	"yahoo.com", "yahoo.co.uk", "yahoo.fr", "yahoo.de",
	"outlook.com", "hotmail.com", "hotmail.co.uk", "live.com",
	"icloud.com", "me.com", "mac.com",
	"protonmail.com", "proton.me",
	"aol.com",
	"zoho.com",
	"yandex.com", "yandex.ru",
	"mail.com",
	"gmx.com", "gmx.net", "gmx.de",
	"fastmail.com",
	"tutanota.com",
	// Hungarian providers
	"freemail.hu", "citromail.hu", "t-online.hu", "invitel.hu",
}

func NewDomainChecker(cfg DomainConfig) *DomainChecker {
	providers := defaultKnownProviders
	if len(cfg.KnownProviders) > 0 {
		providers = cfg.KnownProviders
	}
	c := &DomainChecker{
		cfg:            cfg,
		knownProviders: providers,
	}
	c.suggestions = domaincache.New(maxCachedDomains, c.findTypoSuggestion)
	return c
}

func (c *DomainChecker) Check(_ context.Context, email parse.Email) types.CheckResult {
	level := types.LevelDomain

	if !email.Split {
		return types.CheckResult{Level: level, Passed: false, Details: "skipped: invalid email"}
	}
	if err := syntax.VerifyDomain(email.Domain); err != nil {
		return types.CheckResult{Level: level, Passed: false, Details: "skipped: " + err.Error()}
	}

	if c.cfg.CheckTypos {
		if suggestion := c.suggestions.Get(email.DomainKey()); suggestion != "" {
			return types.CheckResult{
				Level:      level,
				Passed:     true, // typo suspicion does not fail
				Details:    "possible typo in domain",
				Suggestion: suggestion,
			}
		}
	}

	return types.CheckResult{Level: level, Passed: true, Details: "domain ok"}
}

// findTypoSuggestion finds the closest known provider.
// If the distance is <= TypoThreshold and the domain is not an exact match,
// it returns the suggested domain. Otherwise returns an empty string.
func (c *DomainChecker) findTypoSuggestion(domain string) string {
	bestDist := c.cfg.TypoThreshold + 1
	bestMatch := ""

	for _, provider := range c.knownProviders {
		if domain == provider {
			return "" // exact match, no typo
		}
		if dist, ok := levenshtein.Within(domain, provider, c.cfg.TypoThreshold); ok && dist < bestDist {
			bestDist = dist
			bestMatch = provider
		}
	}

	return bestMatch
}
