// ABOUTME: Static keyword tables mapping legal vocabulary to domains
// ABOUTME: Passed into the Chunker at construction so tagging has no global state
package chunker

import "github.com/nyaya-ai/nyaya/internal/models"

// DomainKeywords binds one legal domain to the keyword set that signals it.
type DomainKeywords struct {
	Domain   models.Domain
	Keywords []string
}

// DefaultDomainKeywords returns the standard keyword tables in priority
// order. When two domains score equally, the earlier entry wins, so the
// declaration order here is the tie-break:
// constitutional > criminal > civil > family > corporate.
func DefaultDomainKeywords() []DomainKeywords {
	return []DomainKeywords{
		{
			Domain: models.DomainConstitutional,
			Keywords: []string{
				"constitution", "fundamental rights", "directive principles",
				"amendment", "article", "schedule",
			},
		},
		{
			Domain: models.DomainCriminal,
			Keywords: []string{
				"criminal", "offence", "punishment", "bail", "arrest",
				"investigation", "charge", "ipc", "bns",
			},
		},
		{
			Domain: models.DomainCivil,
			Keywords: []string{
				"civil", "contract", "property", "damages", "injunction",
				"suit", "plaintiff", "defendant",
			},
		},
		{
			Domain: models.DomainFamily,
			Keywords: []string{
				"marriage", "divorce", "custody", "maintenance",
				"adoption", "succession",
			},
		},
		{
			Domain: models.DomainCorporate,
			Keywords: []string{
				"company", "corporate", "shares", "director",
				"commercial", "business",
			},
		},
	}
}
