package contract

import (
	"strings"

	"example.com/creator-rates/backend/internal/models"
)

var confidentialDefinitions = map[models.ContractType][]string{
	models.ContractTypeDigital: {
		"Unpublished creative work, design files, and source materials",
		"Business strategies, marketing plans, and proprietary processes",
		"Client lists, pricing structures, and financial information",
		"Trade secrets, technical specifications, and project methodologies",
		"Any information explicitly marked as confidential by either party",
	},
	models.ContractTypePhysical: {
		"Original designs, patterns, templates, and production techniques",
		"Supplier information, material sources, and pricing details",
		"Custom specifications and proprietary manufacturing processes",
		"Client personal information and order details",
		"Any information explicitly marked as confidential by either party",
	},
	models.ContractTypeContent: {
		"Unpublished content, scripts, outlines, and creative concepts",
		"Brand guidelines, content calendars, and strategic plans",
		"Analytics, performance data, and audience insights",
		"Compensation details and contract negotiations",
		"Any information explicitly marked as confidential by either party",
	},
}

// ConfidentialityText собирает текст раздела о конфиденциальности из
// включенных подпунктов в фиксированном порядке. Если не включен ни один,
// возвращается короткая общая формулировка.
func ConfidentialityText(data models.ContractData) string {
	projectName := fallback(data.ProjectName, "[PROJECT_NAME]")
	creatorName := fallback(data.CreatorName, "[YOUR_NAME]")
	clientName := fallback(data.ClientName, "[CLIENT_NAME]")
	duration := fallback(data.ConfidentialityDuration, "3 years")
	portfolioDelay := fallback(data.PortfolioUsageDelay, "upon project completion")
	sub := data.ConfidentialitySubclauses

	var sections []string

	if sub.DefineConfidential {
		definitions, ok := confidentialDefinitions[data.ContractType]
		if !ok {
			definitions = confidentialDefinitions[models.ContractTypeDigital]
		}
		items := make([]string, len(definitions))
		for i, item := range definitions {
			items[i] = "• " + item
		}
		sections = append(sections, `**1. CONFIDENTIAL INFORMATION DEFINED**

Both `+creatorName+` ("Creator") and `+clientName+` ("Client") agree that the following information related to `+projectName+` is considered confidential:

`+strings.Join(items, "\n")+`

Educational Note: This clearly defines what information must be kept private. Being specific helps prevent misunderstandings and protects both parties' interests.`)
	}

	if sub.Exclusions {
		sections = append(sections, `**2. EXCLUSIONS FROM CONFIDENTIALITY**

The following information is NOT considered confidential:

• Information that is publicly available or becomes public through no breach of this agreement
• Information independently developed without use of confidential information
• Information already known prior to this agreement
• Information required to be disclosed by law, court order, or government authority

Educational Note: These standard exclusions ensure you're not restricted from using publicly available information or your own independently created work.`)
	}

	if sub.PortfolioRights {
		sections = append(sections, `**3. PORTFOLIO & CASE STUDY USAGE**

Creator may use the work created for `+projectName+` in their professional portfolio `+portfolioDelay+`. This includes:

• Displaying final deliverables on personal website and portfolio platforms
• Including the project in case studies (with or without Client name, as agreed)
• Showcasing work samples in client pitches and proposals

The Creator will respect any Client requests to:
• Delay portfolio posting until a specific date
• Omit Client name or identifying information
• Exclude the work entirely from public portfolios (must be agreed in writing)

Educational Note: Portfolio rights are essential for building your business. This clause balances your professional needs with client confidentiality concerns.`)
	}

	if sub.SocialMediaRights {
		sections = append(sections, `**4. SOCIAL MEDIA & PUBLIC ANNOUNCEMENTS**

Creator may announce the collaboration publicly unless Client requests otherwise. Permitted announcements include:

• Acknowledging the Client relationship (e.g., "Working with `+clientName+`")
• Sharing behind-the-scenes content that doesn't reveal confidential information
• Posting final deliverables `+portfolioDelay+` (unless restricted by Client)

Client may also share and promote the Creator's work publicly once delivered.

Educational Note: Social media visibility helps grow your business. This clause ensures you can announce collaborations while respecting any client privacy needs.`)
	}

	if sub.TeamDisclosure {
		sections = append(sections, `**5. PERMITTED DISCLOSURES TO TEAM MEMBERS**

Both parties may disclose confidential information to:

• Employees, contractors, or subcontractors who need the information to complete the project
• Legal and financial advisors bound by professional confidentiality
• Any person with prior written consent from the other party

The disclosing party must ensure all recipients are informed of the confidential nature and agree to maintain confidentiality.

Educational Note: You often need to involve assistants, editors, or specialists. This clause allows necessary collaboration while maintaining overall confidentiality.`)
	}

	if sub.Duration {
		sections = append(sections, `**6. DURATION OF CONFIDENTIALITY**

The confidentiality obligations in this agreement continue for `+duration+` after the completion or termination of `+projectName+`.

Exceptions:
• Trade secrets remain confidential indefinitely
• Portfolio rights begin `+portfolioDelay+`
• Public announcements permitted as outlined in Section 4

Educational Note: Confidentiality doesn't last forever for most information. This defines clear timeframes so you know when restrictions end.`)
	}

	if sub.ReturnMaterials {
		sections = append(sections, `**7. RETURN OR DESTRUCTION OF MATERIALS**

Upon completion or termination of this agreement:

• Client materials provided for the project should be returned or securely deleted
• The Creator may retain one copy of deliverables for portfolio purposes (as outlined in Section 3)
• Both parties should delete or return documents explicitly marked "Return After Use"
• Digital files containing confidential information should be permanently deleted from unsecured locations

Educational Note: This protects both parties from data breaches. Keep secure backups for your portfolio rights, but remove unnecessary confidential files.`)
	}

	if sub.BreachRemedies {
		sections = append(sections, `**8. BREACH AND REMEDIES**

Both parties acknowledge that breach of this confidentiality agreement could cause irreparable harm.

In the event of a breach:
• The non-breaching party may seek injunctive relief (court order to stop the breach)
• The breaching party may be liable for actual damages caused by the breach
• The non-breaching party may pursue any other remedies available under law

Minor inadvertent disclosures should be promptly reported and corrected in good faith.

Educational Note: This isn't meant to be scary - it's standard legal protection. Most confidentiality issues are honest mistakes that can be resolved through communication.`)
	}

	if len(sections) == 0 {
		return "Both parties agree to keep confidential any proprietary information shared during " + projectName +
			". This obligation extends for " + duration + " beyond the completion of this agreement."
	}

	return strings.Join(sections, "\n\n---\n\n")
}
