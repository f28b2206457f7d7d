package contract

import (
	"time"

	"example.com/creator-rates/backend/internal/models"
)

type ItemKind int

const (
	ItemParagraph ItemKind = iota
	ItemField
	ItemBlock
	ItemSubsection
	ItemProvision
)

type Item struct {
	Kind  ItemKind
	Label string
	Text  string
}

type Section struct {
	Title string
	Items []Item
}

type Document struct {
	Title       string
	Project     string
	StartDate   string
	EndDate     string
	Creator     []string
	Client      []string
	CreatorName string
	ClientName  string
	Sections    []Section
	GeneratedAt time.Time
}

func paragraph(text string) Item    { return Item{Kind: ItemParagraph, Text: text} }
func field(label, text string) Item { return Item{Kind: ItemField, Label: label, Text: text} }
func block(label, text string) Item { return Item{Kind: ItemBlock, Label: label, Text: text} }

func subsection(label, text string) Item {
	return Item{Kind: ItemSubsection, Label: label, Text: text}
}

func provision(label, text string) Item {
	return Item{Kind: ItemProvision, Label: label, Text: text}
}

func partyLines(name, address, city, state, zip, country, email, phone string) []string {
	lines := []string{name}
	if address != "" {
		lines = append(lines, address)
	}
	if city != "" || state != "" || zip != "" {
		line := city
		if city != "" && state != "" {
			line += ", "
		}
		line += state
		if state != "" && zip != "" {
			line += " "
		}
		line += zip
		lines = append(lines, line)
	}
	if country != "" {
		lines = append(lines, country)
	}
	if email != "" {
		lines = append(lines, email)
	}
	if phone != "" {
		lines = append(lines, phone)
	}
	return lines
}

// Assemble строит структуру итогового договора из данных: секции в
// каноническом порядке, шаблонные клаузы подставляются там, где
// пользователь не задал собственный текст. General Provisions и
// Signatures включаются всегда.
func Assemble(data models.ContractData, generatedAt time.Time) Document {
	doc := Document{
		Title:       "Service Agreement",
		Project:     data.ProjectName,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		CreatorName: fallback(data.CreatorName, "[YOUR_NAME]"),
		ClientName:  fallback(data.ClientName, "[CLIENT_NAME]"),
		GeneratedAt: generatedAt,
	}
	doc.Creator = partyLines(doc.CreatorName, data.CreatorAddress, data.CreatorCity,
		data.CreatorState, data.CreatorZip, data.CreatorCountry, data.CreatorEmail, data.CreatorPhone)
	doc.Client = partyLines(doc.ClientName, data.ClientAddress, data.ClientCity,
		data.ClientState, data.ClientZip, data.ClientCountry, data.ClientEmail, data.ClientPhone)

	sections := data.Sections

	if sections.ScopeOfWork {
		doc.Sections = append(doc.Sections, Section{
			Title: "Scope of Work",
			Items: []Item{paragraph(Resolve("scopeOfWork", data.ScopeOfWork, data))},
		})
	}

	if sections.Deliverables {
		doc.Sections = append(doc.Sections, Section{
			Title: "Deliverables",
			Items: []Item{paragraph(Resolve("deliverables", data.Deliverables, data))},
		})
	}

	if sections.Timeline {
		doc.Sections = append(doc.Sections, Section{
			Title: "Timeline & Milestones",
			Items: []Item{paragraph(Resolve("timeline", data.Timeline, data))},
		})
	}

	if sections.Payment {
		section := Section{Title: "Payment & Terms"}
		if data.PaymentAmount != "" {
			section.Items = append(section.Items,
				field("Amount", CurrencySymbol(data.Currency)+" "+data.PaymentAmount))
		}
		if data.PaymentSchedule != "" {
			section.Items = append(section.Items, field("Schedule", data.PaymentSchedule))
		}
		if data.PaymentMethod != "" {
			section.Items = append(section.Items,
				block("Payment Details", PaymentDetailsText(data.PaymentMethod, data.PaymentDetails)))
		}
		section.Items = append(section.Items,
			paragraph(Resolve("paymentTerms", data.PaymentTerms, data)))
		doc.Sections = append(doc.Sections, section)
	}

	if sections.Rights {
		doc.Sections = append(doc.Sections, Section{
			Title: "Rights & Usage",
			Items: []Item{paragraph(Resolve("rightsUsage", data.RightsUsage, data))},
		})
	}

	if sections.Revisions {
		section := Section{Title: "Revisions Policy"}
		section.Items = append(section.Items,
			field("Limit", Resolve("revisionsLimit", data.RevisionsLimit, data)),
			field("Timeline", Resolve("revisionsTimeline", data.RevisionsTimeline, data)))
		if data.RevisionsDefinition != "" {
			section.Items = append(section.Items, field("What Counts as a Revision", data.RevisionsDefinition))
		}
		if data.RevisionsOverflow != "" {
			section.Items = append(section.Items, field("Additional Revisions", data.RevisionsOverflow))
		}
		if data.RevisionsAdditional != "" {
			section.Items = append(section.Items, field("Additional Terms", data.RevisionsAdditional))
		}
		doc.Sections = append(doc.Sections, section)
	}

	if sections.Cancellation {
		section := Section{Title: "Cancellation Policy"}
		section.Items = append(section.Items,
			field("Notice Period", Resolve("cancellationNotice", data.CancellationNotice, data)),
			field("Fee", Resolve("cancellationFee", data.CancellationFee, data)))
		if data.CancellationAdditional != "" {
			section.Items = append(section.Items, field("Additional Terms", data.CancellationAdditional))
		}
		doc.Sections = append(doc.Sections, section)
	}

	if sections.Confidentiality {
		text := data.ConfidentialityTerms
		if text == "" {
			text = ConfidentialityText(data)
		}
		doc.Sections = append(doc.Sections, Section{
			Title: "Confidentiality",
			Items: []Item{paragraph(text)},
		})
	}

	if sections.Jurisdiction {
		law := fallback(data.GoverningLaw, GoverningLaw(data))
		venue := fallback(data.JurisdictionVenue, JurisdictionVenue(data))
		doc.Sections = append(doc.Sections, Section{
			Title: "Governing Law & Jurisdiction",
			Items: []Item{
				field("Governing Law", "This agreement shall be governed by and construed in accordance with the laws of the "+law+"."),
				field("Jurisdiction", "Any legal action or proceeding arising under this agreement will be brought exclusively in the "+venue+"."),
			},
		})
	}

	if sections.Liability {
		doc.Sections = append(doc.Sections, Section{
			Title: "Liability & Warranties",
			Items: []Item{
				subsection("Independent Contractor", Resolve("independentContractorTerms", data.IndependentContractorTerms, data)),
				subsection("Limitation of Liability", Resolve("liabilityLimit", data.LiabilityLimit, data)),
				subsection("Indemnification", Resolve("indemnificationTerms", data.IndemnificationTerms, data)),
				subsection("Warranties & Representations", Resolve("warrantyTerms", data.WarrantyTerms, data)),
			},
		})
	}

	if sections.DisputeResolution {
		doc.Sections = append(doc.Sections, Section{
			Title: "Dispute Resolution",
			Items: []Item{
				subsection("Dispute Resolution Process", Resolve("disputeResolutionTerms", data.DisputeResolutionTerms, data)),
				subsection("Force Majeure", Resolve("forceMajeureTerms", data.ForceMajeureTerms, data)),
			},
		})
	}

	doc.Sections = append(doc.Sections, generalProvisions(data))

	for _, clause := range data.CustomClauses {
		if clause.Title == "" || clause.Content == "" {
			continue
		}
		doc.Sections = append(doc.Sections, Section{
			Title: clause.Title,
			Items: []Item{paragraph(clause.Content)},
		})
	}

	doc.Sections = append(doc.Sections, signatures(doc.CreatorName, doc.ClientName))

	return doc
}

func generalProvisions(data models.ContractData) Section {
	notices := "All notices, requests, and other communications under this agreement shall be in writing and delivered via email to the addresses provided in this agreement"
	if data.CreatorEmail != "" && data.ClientEmail != "" {
		notices += " (Creator: " + data.CreatorEmail + ", Client: " + data.ClientEmail + ")"
	}
	notices += ". Notices shall be deemed received on the date of confirmed delivery. Either party may change their notice address by providing written notice to the other party."

	return Section{
		Title: "General Provisions",
		Items: []Item{
			provision("Entire Agreement", "This agreement constitutes the entire agreement between the parties and supersedes all prior negotiations, representations, warranties, commitments, offers, contracts, and writings, whether written or oral, relating to its subject matter. No prior drafts, correspondence, or verbal discussions shall be used to interpret or modify this agreement."),
			provision("Severability", "If any provision of this agreement is found to be invalid, illegal, or unenforceable by a court of competent jurisdiction, the remaining provisions shall continue in full force and effect. The invalid provision shall be modified to the minimum extent necessary to make it valid and enforceable while preserving the original intent of the parties."),
			provision("Amendments & Modifications", "No amendment, modification, or waiver of any provision of this agreement shall be effective unless made in writing and signed by both parties. Verbal agreements or informal written communications (including emails, text messages, and direct messages) do not constitute valid amendments to this agreement."),
			provision("Waiver", "The failure of either party to enforce any provision of this agreement shall not be construed as a waiver of such provision or the right to enforce it at a later time. A waiver of any breach of this agreement shall not constitute a waiver of any subsequent breach."),
			provision("Assignment", "Neither party may assign, transfer, or delegate their rights or obligations under this agreement without the prior written consent of the other party. Any attempted assignment without such consent shall be void. This agreement shall be binding upon and inure to the benefit of the parties and their permitted successors and assigns."),
			provision("Notices", notices),
		},
	}
}

func signatures(creatorName, clientName string) Section {
	const line = "____________________________"
	return Section{
		Title: "Signatures",
		Items: []Item{
			paragraph("By signing below, both parties acknowledge they have read, understood, and agree to be bound by the terms and conditions outlined in this agreement."),
			provision("Creator:", "Signature: "+line+"\n\nName: "+creatorName+"\n\nDate: "+line),
			provision("Client:", "Signature: "+line+"\n\nName: "+clientName+"\n\nDate: "+line),
		},
	}
}
