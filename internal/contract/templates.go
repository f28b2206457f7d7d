package contract

import (
	"strings"

	"example.com/creator-rates/backend/internal/models"
)

// Шаблоны клауз по типам договоров. Токены в фигурных скобках заменяются
// данными договора, незаполненные значения остаются плейсхолдерами в
// квадратных скобках, которые стороны заполняют вручную.

var digitalTemplates = map[string]string{
	"scopeOfWork": `{CREATOR} ("Creator") agrees to provide digital creator services to {CLIENT} ("Client") for {PROJECT}. This includes but is not limited to:

• Consulting and strategic guidance for the project
• Creation of digital assets as outlined in the Deliverables section
• Communication and collaboration throughout the project timeline
• Professional execution according to industry standards

The Creator will work independently and maintain creative control over the execution of deliverables, while incorporating Client feedback as outlined in the Revisions Policy.

Any work outside the scope defined in this agreement will require a separate agreement and additional compensation.`,

	"deliverables": `The Creator will provide the following deliverables to the Client upon completion of {PROJECT}:

• [List specific deliverables, e.g., "3 Instagram posts with captions"]
• [e.g., "1 brand strategy document (PDF format)"]
• [e.g., "2 rounds of design concepts"]
• [e.g., "Final files in high-resolution format"]

All deliverables will be provided in the format(s) specified and delivered via [delivery method, e.g., email, Google Drive, Dropbox]. The Client is responsible for downloading and securing all files within 30 days of delivery.`,

	"timeline": `Project timeline for {PROJECT}:

• Project Start Date: {START_DATE}
• Project End Date: {END_DATE}

Milestones:
• Initial concepts/drafts: [DATE]
• Client review period: [NUMBER] business days after delivery
• Revisions submitted: [DATE]
• Final delivery: [DATE]

Timeline is contingent upon Client providing necessary materials, feedback, and approvals within agreed timeframes. Delays in Client response may result in adjusted delivery dates.`,

	"paymentTerms": `Total project fee: {CURRENCY}{AMOUNT}

Payment schedule: {SCHEDULE}

Payment terms:
• Invoices are due within [NUMBER] days of receipt
• Accepted payment methods: [e.g., Bank transfer, PayPal, Venmo]
• Late payments will incur a fee of [e.g., 5%] per [week/month]
• Work will not commence until initial payment is received
• Final deliverables will be released upon receipt of final payment

All fees are non-refundable once work has commenced.`,

	"rightsUsage": `Upon full payment, the Client receives an exclusive license to use the deliverables for {PROJECT}. [EXCLUSIVE means only the client can use this work - you cannot resell or relicense it to others. Delete this explanation before sending.]

Rights granted:
• Usage: [e.g., Social media, website, print materials, etc.]
• Territory: [e.g., Worldwide/United States only]
• Duration: [e.g., Perpetual/1 year]

The Creator retains:
• Copyright ownership of all work created
• Right to display work in portfolio and promotional materials
• Right to create similar work for other clients

Any usage beyond the scope outlined above requires written permission and may incur additional licensing fees.`,

	"revisionsLimit": `{REV_LIMIT} rounds of revisions`,

	"revisionsTimeline": `Client must request revisions within {REV_TIMELINE} of receiving deliverables`,

	"cancellationNotice": `7 days written notice`,

	"cancellationFee": `25% of total project fee for cancellations with proper notice. 50% for cancellations without proper notice.`,

	"confidentialityTerms": `Both parties agree to keep confidential any proprietary information, trade secrets, or sensitive business information shared during the course of {PROJECT}. This obligation extends for [NUMBER] years beyond the completion of this agreement.

Exceptions: Information that is publicly available, independently developed, or required to be disclosed by law.`,

	"independentContractorTerms": `{CREATOR} is an independent contractor and not an employee, agent, partner, or joint venturer of {CLIENT}. {CREATOR} shall be solely responsible for:

• All federal, state, and local taxes, including self-employment taxes
• Their own tools, equipment, software, and workspace
• Their own health insurance, retirement benefits, and other benefits
• Setting their own working hours and methods of completing the work

Nothing in this agreement shall be construed to create an employer-employee relationship. {CLIENT} will not provide {CREATOR} with employee benefits and will not withhold taxes from payments made under this agreement. {CREATOR} is free to provide services to other clients during the term of this agreement, provided such work does not create a conflict of interest or breach the confidentiality provisions herein.`,

	"liabilityLimit": `To the maximum extent permitted by law, {CREATOR}'s total liability arising out of or related to this agreement shall not exceed the total fees actually paid by {CLIENT} under this agreement.

In no event shall {CREATOR} be liable for any indirect, incidental, special, consequential, or punitive damages, including but not limited to loss of profits, data, business opportunities, or goodwill, regardless of whether such damages were foreseeable or whether {CREATOR} was advised of the possibility of such damages.

{CLIENT}'s sole remedy for dissatisfaction with the services or deliverables shall be limited to re-performance of the deficient services or a refund of the fees paid for the specific deliverable in question.`,

	"indemnificationTerms": `{CLIENT} agrees to indemnify, defend, and hold harmless {CREATOR} from and against any and all claims, damages, losses, liabilities, and expenses (including reasonable attorney's fees) arising out of or related to:

• {CLIENT}'s use of the deliverables in a manner not authorized by this agreement
• Any materials, content, or direction provided by {CLIENT} that infringes on third-party rights
• {CLIENT}'s products, services, or business operations
• Any modification of the deliverables made by {CLIENT} or third parties after delivery

{CREATOR} agrees to indemnify, defend, and hold harmless {CLIENT} from and against any claims that the original deliverables (unmodified) infringe on the intellectual property rights of any third party, provided that {CREATOR} had full creative control over the allegedly infringing elements.`,

	"warrantyTerms": `{CREATOR} represents and warrants that:

• They have the legal right and authority to enter into this agreement and perform the services described herein
• The deliverables will be original work created by {CREATOR} (except for any Client-provided materials or properly licensed third-party assets)
• The deliverables, to the best of {CREATOR}'s knowledge, will not infringe upon the intellectual property rights of any third party
• The services will be performed in a professional and workmanlike manner consistent with generally accepted industry standards

{CLIENT} represents and warrants that:

• They have the legal right and authority to enter into this agreement
• Any materials, content, briefs, or direction provided to {CREATOR} do not infringe upon the rights of any third party
• They will use the deliverables only in the manner permitted by this agreement

EXCEPT AS EXPRESSLY SET FORTH IN THIS AGREEMENT, {CREATOR} MAKES NO OTHER WARRANTIES, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO IMPLIED WARRANTIES OF MERCHANTABILITY OR FITNESS FOR A PARTICULAR PURPOSE.`,

	"disputeResolutionTerms": `In the event of any dispute, claim, or controversy arising out of or relating to this agreement, the parties agree to the following resolution process:

1. GOOD FAITH NEGOTIATION: The parties shall first attempt to resolve the dispute through direct, good faith negotiation for a period of [15/30] days from written notice of the dispute.

2. MEDIATION: If negotiation fails, the parties agree to submit the dispute to non-binding mediation administered by [a mutually agreed-upon mediator / the American Arbitration Association / your local mediation service]. The costs of mediation shall be shared equally between the parties.

3. [BINDING ARBITRATION / LITIGATION]: If mediation fails, the dispute shall be resolved by [binding arbitration under the rules of the American Arbitration Association, with a single arbitrator, in {CITY}, {STATE} / litigation in the courts specified in the Governing Law & Jurisdiction section of this agreement].

[Choose arbitration for faster, more private resolution. Choose litigation if you prefer the option to appeal. Arbitration is generally cheaper and faster, but the decision is usually final.]

Each party shall bear their own attorney's fees and costs unless the arbitrator or court determines that one party's claims or defenses were frivolous, in which case the prevailing party may recover reasonable attorney's fees.`,

	"forceMajeureTerms": `Neither party shall be liable for any failure or delay in performing their obligations under this agreement if such failure or delay results from circumstances beyond the party's reasonable control, including but not limited to:

• Natural disasters (earthquakes, floods, hurricanes, wildfires)
• Pandemics, epidemics, or public health emergencies
• Government actions, laws, regulations, embargoes, or sanctions
• War, terrorism, civil unrest, or armed conflict
• Power outages, internet service disruptions, or telecommunications failures
• Strikes, labor disputes, or supply chain disruptions
• Cyberattacks, data breaches, or technology platform failures

The affected party must notify the other party in writing within [5/10] business days of the force majeure event and make reasonable efforts to mitigate its impact. If the force majeure event continues for more than [30/60] days, either party may terminate this agreement with written notice, and the Creator shall be compensated for all work completed up to the date of the event.`,
}

var physicalTemplates = map[string]string{
	"scopeOfWork": `{CREATOR} ("Creator") agrees to create and deliver physical product(s) for {CLIENT} ("Client") as part of {PROJECT}. This includes:

• Design and creation of physical items as specified in Deliverables
• Sourcing of materials (unless otherwise specified)
• Quality control and craftsmanship meeting professional standards
• Packaging and preparation for delivery/shipment

The Creator maintains full creative control over the production process while incorporating Client specifications and feedback as outlined in the Revisions Policy.

Any additional items or modifications beyond the original scope require separate agreement and additional fees.`,

	"deliverables": `The Creator will create and deliver the following physical items:

• [e.g., "1 handmade ceramic vase, approximately 12 inches tall"]
• [e.g., "3 custom embroidered patches, 4x4 inches"]
• [e.g., "Custom artwork on 16x20 canvas"]

Specifications:
• Materials: [e.g., "Premium cotton, ceramic, etc."]
• Colors: [e.g., "As per reference images provided"]
• Quantity: [NUMBER] units
• Packaging: [e.g., "Gift wrapped / Standard shipping box"]

Shipping: [e.g., "Domestic shipping included / International shipping additional"] via [carrier]. Client is responsible for any customs fees or import duties.`,

	"timeline": `Production timeline for {PROJECT}:

• Order confirmation & payment: {START_DATE}
• Production begins: [DATE]
• Expected completion: {END_DATE}
• Shipping time: [e.g., 3-5 business days]

Timeline notes:
• Production time begins after receipt of deposit
• Completion dates are estimates and may vary due to material availability
• Client will be notified of any significant delays
• Rush orders may be available for additional fee`,

	"paymentTerms": `Total cost: {CURRENCY}{AMOUNT}

Payment schedule: {SCHEDULE}

Payment details:
• Deposit required to begin work
• Final payment due before item(s) ship
• Accepted payment methods: [e.g., Bank transfer, PayPal, credit card]
• Shipping costs: [Included / Additional $[AMOUNT]]
• Late payments will result in delayed shipment

All sales are final once production begins. No refunds for change of mind.`,

	"rightsUsage": `Upon full payment, the Client receives:

• Ownership of the physical item(s) created
• Right to resell, gift, or use items as desired
• Right to photograph items for personal or commercial use

The Creator retains:
• Copyright of the design and creative concept [This means YOU own the design even though the client owns the physical object. Delete this explanation before sending.]
• Right to photograph items for portfolio and marketing
• Right to create similar items for other clients
• Attribution rights when items are publicly displayed or published

The Client may not reproduce, replicate, or manufacture additional copies of the design without written permission.`,

	"revisionsLimit": `{REV_LIMIT} rounds of revisions (concept/design phase only)`,

	"revisionsTimeline": `Design revisions must be requested within {REV_TIMELINE} of receiving concept images. No revisions possible once production begins.`,

	"cancellationNotice": `3 business days written notice (before production begins only)`,

	"cancellationFee": `Full project fee is due if cancellation occurs after production has commenced. Partially completed items become property of the Creator.`,

	"confidentialityTerms": `Both parties agree to keep confidential any proprietary designs, techniques, or sensitive information shared during {PROJECT}. This includes design specifications, pricing structures, and any private client information.

This obligation continues for [NUMBER] years after project completion.`,

	"independentContractorTerms": `{CREATOR} is an independent contractor and not an employee, agent, partner, or joint venturer of {CLIENT}. {CREATOR} shall be solely responsible for:

• All federal, state, and local taxes, including self-employment taxes
• Their own tools, materials, equipment, and workspace
• Their own health insurance, retirement benefits, and other benefits
• Setting their own working hours and production methods

Nothing in this agreement shall be construed to create an employer-employee relationship. {CLIENT} will not provide {CREATOR} with employee benefits and will not withhold taxes from payments. {CREATOR} is free to accept commissions from other clients during the term of this agreement, provided such work does not create a conflict of interest or breach the confidentiality provisions herein.`,

	"liabilityLimit": `To the maximum extent permitted by law, {CREATOR}'s total liability arising out of or related to this agreement shall not exceed the total fees actually paid by {CLIENT} under this agreement.

In no event shall {CREATOR} be liable for any indirect, incidental, special, consequential, or punitive damages, including but not limited to loss of profits, data, business opportunities, or goodwill.

Due to the handmade/custom nature of physical products, minor variations in color, texture, size, and finish are inherent and do not constitute defects. {CLIENT}'s sole remedy for material defects in craftsmanship shall be repair or replacement at {CREATOR}'s discretion, or a refund of the fees paid for the specific item in question.`,

	"indemnificationTerms": `{CLIENT} agrees to indemnify, defend, and hold harmless {CREATOR} from and against any and all claims, damages, losses, liabilities, and expenses (including reasonable attorney's fees) arising out of or related to:

• {CLIENT}'s use, resale, or distribution of the delivered products
• Any specifications, designs, or materials provided by {CLIENT} that infringe on third-party rights
• Product liability claims arising from {CLIENT}'s modification, misuse, or resale of the products
• Any claims related to {CLIENT}'s marketing or representation of the products

{CREATOR} agrees to indemnify, defend, and hold harmless {CLIENT} from and against any claims that the original, unmodified products infringe on the intellectual property rights of any third party.`,

	"warrantyTerms": `{CREATOR} represents and warrants that:

• They have the legal right and authority to enter into this agreement
• The products will be original work created by {CREATOR} using the materials and techniques specified
• The products will be free from material defects in craftsmanship for a period of [30/60/90] days from delivery
• The products will substantially conform to the agreed-upon specifications and approved design concepts

{CLIENT} represents and warrants that:

• They have the legal right and authority to enter into this agreement
• Any designs, specifications, or materials provided to {CREATOR} do not infringe upon the rights of any third party

EXCEPT AS EXPRESSLY SET FORTH IN THIS AGREEMENT, {CREATOR} MAKES NO OTHER WARRANTIES, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO IMPLIED WARRANTIES OF MERCHANTABILITY OR FITNESS FOR A PARTICULAR PURPOSE. Due to the handmade nature of the products, minor variations are expected and do not constitute a breach of warranty.`,

	"disputeResolutionTerms": `In the event of any dispute, claim, or controversy arising out of or relating to this agreement, the parties agree to the following resolution process:

1. GOOD FAITH NEGOTIATION: The parties shall first attempt to resolve the dispute through direct, good faith negotiation for a period of [15/30] days from written notice of the dispute.

2. MEDIATION: If negotiation fails, the parties agree to submit the dispute to non-binding mediation administered by [a mutually agreed-upon mediator / the American Arbitration Association / your local mediation service]. The costs of mediation shall be shared equally between the parties.

3. [BINDING ARBITRATION / LITIGATION]: If mediation fails, the dispute shall be resolved by [binding arbitration under the rules of the American Arbitration Association, with a single arbitrator, in {CITY}, {STATE} / litigation in the courts specified in the Governing Law & Jurisdiction section of this agreement].

Each party shall bear their own attorney's fees and costs unless the arbitrator or court determines that one party's claims or defenses were frivolous, in which case the prevailing party may recover reasonable attorney's fees.`,

	"forceMajeureTerms": `Neither party shall be liable for any failure or delay in performing their obligations under this agreement if such failure or delay results from circumstances beyond the party's reasonable control, including but not limited to:

• Natural disasters (earthquakes, floods, hurricanes, wildfires)
• Pandemics, epidemics, or public health emergencies
• Government actions, laws, regulations, embargoes, or sanctions
• Supply chain disruptions, material shortages, or shipping delays
• Power outages or infrastructure failures
• War, terrorism, civil unrest, or armed conflict
• Strikes, labor disputes, or equipment failures

The affected party must notify the other party in writing within [5/10] business days of the force majeure event and make reasonable efforts to mitigate its impact. If the force majeure event continues for more than [30/60] days, either party may terminate this agreement with written notice, and the Creator shall be compensated for all work completed and materials purchased up to the date of the event.`,
}

var contentTemplates = map[string]string{
	"scopeOfWork": `{CREATOR} ("Creator") agrees to create original content for {CLIENT} ("Client") as part of {PROJECT}. This includes:

• Planning and conceptualizing content according to Client brief
• Production of content including [filming/photography/writing]
• Editing and post-production work
• Delivery of final content files in specified formats
• [NUMBER] rounds of revisions as outlined below

The Creator maintains editorial and creative control over content creation while collaborating with Client on overall direction and messaging.

Additional content pieces beyond the agreed scope will require separate agreement and compensation.`,

	"deliverables": `The Creator will produce and deliver the following content:

• [e.g., "1 YouTube video, 8-12 minutes long, fully edited"]
• [e.g., "10 high-resolution photos, edited and color-graded"]
• [e.g., "5 blog posts, 1000-1500 words each, SEO optimized"]

Format specifications:
• Video: [e.g., "1080p MP4, H.264 codec"]
• Photos: [e.g., "JPEG, minimum 3000px wide"]
• Writing: [e.g., "Google Docs or Word format"]

Delivery: Files will be provided via [e.g., Google Drive, Dropbox, WeTransfer] by the agreed completion date. Raw footage/files [included/not included].`,

	"timeline": `Content creation timeline for {PROJECT}:

• Project kickoff: {START_DATE}
• Content production: [DATE]
• First draft delivery: [DATE]
• Client feedback due: [NUMBER] business days after delivery
• Revisions completed: [DATE]
• Final delivery: {END_DATE}

Schedule notes:
• Production schedule depends on location/talent availability
• Weather or unforeseen circumstances may affect filming dates
• Timeline adjusts if Client feedback is delayed
• Rush delivery available for additional fee`,

	"paymentTerms": `Total project fee: {CURRENCY}{AMOUNT}

Payment schedule: {SCHEDULE}

Payment terms:
• Initial payment due before any work begins
• Subsequent payments due according to milestones
• Accepted methods: [e.g., Bank transfer, PayPal, check]
• Expenses: [Travel, equipment rental, talent fees] [included / billed separately]
• Late payment fee: [PERCENTAGE]% per [week/month]

Final files released only upon receipt of final payment. No refunds after production begins.`,

	"rightsUsage": `Upon full payment, Client receives license to use the content for {PROJECT} as follows:

Rights granted:
• Platforms: [e.g., "YouTube, Instagram, Facebook, Company website"]
• Territory: [e.g., "Worldwide" / "North America only"]
• Duration: [e.g., "In perpetuity" / "2 years from delivery"]
• Exclusivity: [Choose Exclusive or Non-exclusive. EXCLUSIVE means only this client can use this content - you cannot resell it. NON-EXCLUSIVE means you can license the same content to others. Delete this explanation before sending.]

The Creator retains:
• Copyright ownership of all content created
• Right to use content in portfolio, demo reel, and marketing materials
• Raw footage and outtakes (unless negotiated otherwise)
• Right to create similar content for other clients

Any usage beyond scope (e.g., TV commercials, paid advertising, resale) requires additional licensing agreement and fees.`,

	"revisionsLimit": `{REV_LIMIT} rounds of revisions included`,

	"revisionsTimeline": `Revision requests must be submitted within {REV_TIMELINE} of receiving draft. Additional revision rounds available at $[AMOUNT] per round.`,

	"cancellationNotice": `14 days written notice (before production begins). 7 days notice during pre-production. No cancellation once production begins.`,

	"cancellationFee": `50% of total fee for cancellations in pre-production with proper notice. 100% of fee if production has commenced. Completed work transfers to Client.`,

	"confidentialityTerms": `Both parties agree to maintain confidentiality regarding:

• Unpublished content and creative concepts
• Proprietary business information
• Compensation and contract terms
• Any sensitive information marked as confidential

This obligation continues for [NUMBER] years after completion. Creator may announce the collaboration publicly unless otherwise agreed.`,

	"independentContractorTerms": `{CREATOR} is an independent contractor and not an employee, agent, partner, or joint venturer of {CLIENT}. {CREATOR} shall be solely responsible for:

• All federal, state, and local taxes, including self-employment taxes
• Their own equipment, software, studio space, and production tools
• Their own health insurance, retirement benefits, and other benefits
• Setting their own filming/production schedule and creative methods

Nothing in this agreement shall be construed to create an employer-employee relationship. {CLIENT} will not provide {CREATOR} with employee benefits and will not withhold taxes from payments. {CREATOR} is free to create content for other clients during the term of this agreement, provided such work does not create a conflict of interest, violate any exclusivity provisions, or breach the confidentiality provisions herein.`,

	"liabilityLimit": `To the maximum extent permitted by law, {CREATOR}'s total liability arising out of or related to this agreement shall not exceed the total fees actually paid by {CLIENT} under this agreement.

In no event shall {CREATOR} be liable for any indirect, incidental, special, consequential, or punitive damages, including but not limited to loss of profits, followers, engagement metrics, brand reputation, or business opportunities, regardless of whether such damages were foreseeable.

{CREATOR} is not responsible for the performance of published content, including but not limited to views, engagement, conversions, or sales resulting from the content. {CLIENT}'s sole remedy for dissatisfaction with the content shall be re-creation of the deficient content or a refund of the fees paid for the specific deliverable in question.`,

	"indemnificationTerms": `{CLIENT} agrees to indemnify, defend, and hold harmless {CREATOR} from and against any and all claims, damages, losses, liabilities, and expenses (including reasonable attorney's fees) arising out of or related to:

• {CLIENT}'s products, services, or claims that {CREATOR} is asked to feature or promote in the content
• Any scripts, talking points, product claims, or direction provided by {CLIENT} (including FTC compliance of required messaging)
• Claims arising from {CLIENT}'s use of the content beyond the scope authorized by this agreement
• Any modification of the content made by {CLIENT} or third parties after delivery

{CREATOR} agrees to indemnify, defend, and hold harmless {CLIENT} from and against any claims that the original content (unmodified) infringes on the intellectual property rights of any third party, including unauthorized use of third-party music, footage, or images, provided that {CREATOR} had full creative control over the allegedly infringing elements.`,

	"warrantyTerms": `{CREATOR} represents and warrants that:

• They have the legal right and authority to enter into this agreement and create the content described herein
• The content will be original work created by {CREATOR} (except for any Client-provided materials, properly licensed music/assets, or content specifically identified as sourced from third parties)
• The content, to the best of {CREATOR}'s knowledge, will not infringe upon the intellectual property rights of any third party
• The content will be produced in a professional manner consistent with generally accepted industry standards
• {CREATOR} will comply with applicable FTC disclosure requirements and platform guidelines when creating sponsored content

{CLIENT} represents and warrants that:

• They have the legal right and authority to enter into this agreement
• Any product claims, scripts, briefs, or direction provided to {CREATOR} are truthful, substantiated, and comply with applicable advertising laws and FTC guidelines
• The products or services featured in the content are safe, legal, and accurately represented

EXCEPT AS EXPRESSLY SET FORTH IN THIS AGREEMENT, {CREATOR} MAKES NO WARRANTIES REGARDING CONTENT PERFORMANCE, INCLUDING BUT NOT LIMITED TO VIEWS, ENGAGEMENT, REACH, CONVERSIONS, OR SALES.`,

	"disputeResolutionTerms": `In the event of any dispute, claim, or controversy arising out of or relating to this agreement, the parties agree to the following resolution process:

1. GOOD FAITH NEGOTIATION: The parties shall first attempt to resolve the dispute through direct, good faith negotiation for a period of [15/30] days from written notice of the dispute.

2. MEDIATION: If negotiation fails, the parties agree to submit the dispute to non-binding mediation administered by [a mutually agreed-upon mediator / the American Arbitration Association / your local mediation service]. The costs of mediation shall be shared equally between the parties.

3. [BINDING ARBITRATION / LITIGATION]: If mediation fails, the dispute shall be resolved by [binding arbitration under the rules of the American Arbitration Association, with a single arbitrator, in {CITY}, {STATE} / litigation in the courts specified in the Governing Law & Jurisdiction section of this agreement].

Each party shall bear their own attorney's fees and costs unless the arbitrator or court determines that one party's claims or defenses were frivolous, in which case the prevailing party may recover reasonable attorney's fees.`,

	"forceMajeureTerms": `Neither party shall be liable for any failure or delay in performing their obligations under this agreement if such failure or delay results from circumstances beyond the party's reasonable control, including but not limited to:

• Natural disasters (earthquakes, floods, hurricanes, wildfires)
• Pandemics, epidemics, or public health emergencies
• Government actions, laws, regulations, embargoes, or sanctions
• Social media platform outages, algorithm changes, or account suspensions beyond the Creator's control
• Power outages, internet service disruptions, or equipment failures
• War, terrorism, civil unrest, or armed conflict
• Strikes, labor disputes, or supply chain disruptions

The affected party must notify the other party in writing within [5/10] business days of the force majeure event and make reasonable efforts to mitigate its impact. If the force majeure event continues for more than [30/60] days, either party may terminate this agreement with written notice, and the Creator shall be compensated for all work completed up to the date of the event.`,
}

func templatesFor(contractType models.ContractType) map[string]string {
	switch contractType {
	case models.ContractTypePhysical:
		return physicalTemplates
	case models.ContractTypeContent:
		return contentTemplates
	default:
		return digitalTemplates
	}
}

func scheduleFallback(contractType models.ContractType) string {
	switch contractType {
	case models.ContractTypePhysical:
		return "[e.g., 50% deposit, 50% before shipping]"
	case models.ContractTypeContent:
		return "[e.g., 40% upfront, 30% after filming, 30% upon delivery]"
	default:
		return "[e.g., 50% upfront, 50% upon completion]"
	}
}

// TemplateText возвращает шаблонный текст клаузы для типа договора с
// подстановкой данных сторон. Неизвестное поле дает пустую строку.
func TemplateText(field string, data models.ContractData) string {
	switch field {
	case "governingLaw":
		return GoverningLaw(data)
	case "jurisdictionVenue":
		return JurisdictionVenue(data)
	}

	template, ok := templatesFor(data.ContractType)[field]
	if !ok {
		return ""
	}

	currency := data.Currency
	if currency == "" {
		currency = "USD"
	}

	replacer := strings.NewReplacer(
		"{CREATOR}", fallback(data.CreatorName, "[YOUR_NAME]"),
		"{CLIENT}", fallback(data.ClientName, "[CLIENT_NAME]"),
		"{PROJECT}", fallback(data.ProjectName, "[PROJECT_NAME]"),
		"{AMOUNT}", fallback(data.PaymentAmount, "[AMOUNT]"),
		"{CURRENCY}", CurrencySymbol(currency),
		"{SCHEDULE}", fallback(data.PaymentSchedule, scheduleFallback(data.ContractType)),
		"{START_DATE}", fallback(data.StartDate, "[START_DATE]"),
		"{END_DATE}", fallback(data.EndDate, "[END_DATE]"),
		"{REV_LIMIT}", fallback(data.RevisionsLimit, "[NUMBER]"),
		"{REV_TIMELINE}", fallback(data.RevisionsTimeline, "[TIMEFRAME]"),
		"{CITY}", fallback(data.CreatorCity, "[YOUR_CITY]"),
		"{STATE}", fallback(data.CreatorState, "[YOUR_STATE]"),
	)

	return replacer.Replace(template)
}

// GoverningLaw выводит применимое право из адреса креатора.
func GoverningLaw(data models.ContractData) string {
	if data.CreatorState != "" {
		return "State of " + data.CreatorState
	}
	if data.CreatorCountry != "" {
		return data.CreatorCountry
	}
	return "State of [YOUR_STATE]"
}

// JurisdictionVenue выводит подсудность каскадом: город+штат+страна,
// город+штат, город+страна, страна, затем плейсхолдер.
func JurisdictionVenue(data models.ContractData) string {
	city, state, country := data.CreatorCity, data.CreatorState, data.CreatorCountry

	switch {
	case city != "" && state != "" && country != "":
		return "Courts of " + city + ", " + state + ", " + country
	case city != "" && state != "":
		return "Courts of " + city + ", " + state
	case city != "" && country != "":
		return "Courts of " + city + ", " + country
	case country != "":
		return "Courts of " + country
	default:
		return "Courts of [YOUR_CITY], [YOUR_STATE]"
	}
}

// Resolve возвращает пользовательский текст клаузы, а при его отсутствии шаблон.
func Resolve(field, override string, data models.ContractData) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return TemplateText(field, data)
}
