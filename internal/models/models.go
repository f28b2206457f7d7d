package models

import (
	"time"

	"github.com/google/uuid"
)

type CreatorType string

type ExperienceLevel string

type ProjectTerms string

type Platform string

type UsageRights string

type SalesChannel string

type RateTier string

type ContractType string

type PaymentMethod string

const (
	CreatorTypeDigital  CreatorType = "digital"
	CreatorTypePhysical CreatorType = "physical"
	CreatorTypeContent  CreatorType = "content"

	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"

	TermsStandard       ProjectTerms = "standard"
	TermsExtraRevisions ProjectTerms = "extra_revisions"
	TermsRush           ProjectTerms = "rush"
	TermsRushRevisions  ProjectTerms = "rush_revisions"

	PlatformYouTube   Platform = "YouTube"
	PlatformInstagram Platform = "Instagram"
	PlatformTikTok    Platform = "TikTok"
	PlatformTwitter   Platform = "Twitter/X"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformBlog      Platform = "Blog/Newsletter"

	RightsOrganic   UsageRights = "organic"
	RightsPaidAd    UsageRights = "paid_ad"
	RightsExclusive UsageRights = "exclusive"

	ChannelWholesale SalesChannel = "wholesale"
	ChannelRetail    SalesChannel = "retail"

	TierBase        RateTier = "base"
	TierRecommended RateTier = "recommended"

	ContractTypeDigital  ContractType = "digital"
	ContractTypePhysical ContractType = "physical"
	ContractTypeContent  ContractType = "content"

	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodVenmo  PaymentMethod = "venmo"
	PaymentMethodZelle  PaymentMethod = "zelle"
	PaymentMethodCrypto PaymentMethod = "crypto"
	PaymentMethodOther  PaymentMethod = "other"
)

type Expense struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	MonthlyCost float64   `json:"monthlyCost"`
}

type IncomeSettings struct {
	TaxRate         float64 `json:"taxRate"`
	EmergencyBuffer float64 `json:"emergencyBuffer"`
	Reinvestment    float64 `json:"reinvestment"`
	WeeksPerYear    float64 `json:"weeksPerYear"`
	DaysPerWeek     float64 `json:"daysPerWeek"`
	HoursPerDay     float64 `json:"hoursPerDay"`
}

// CreatorProfile хранит вводные данные шага выбора типа креатора.
// Поля метрик площадок заполняются только для контент-креаторов.
type CreatorProfile struct {
	Type            CreatorType     `json:"type"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel,omitempty"`
	ProjectTerms    ProjectTerms    `json:"projectTerms,omitempty"`

	HoursPerUnit    float64      `json:"hoursPerUnit,omitempty"`
	AvgMaterialCost float64      `json:"avgMaterialCost,omitempty"`
	SalesChannel    SalesChannel `json:"salesChannel,omitempty"`
	ShippingCost    float64      `json:"shippingCost,omitempty"`

	PrimaryPlatform Platform `json:"primaryPlatform,omitempty"`
	HoursPerContent float64  `json:"hoursPerContent,omitempty"`
	EngagementRate  float64  `json:"engagementRate,omitempty"`

	Subscribers         int64   `json:"subscribers,omitempty"`
	AvgViews            int64   `json:"avgViews,omitempty"`
	AvgWatchTimePercent float64 `json:"avgWatchTimePercent,omitempty"`

	InstagramFollowers   int64 `json:"instagramFollowers,omitempty"`
	InstagramAvgLikes    int64 `json:"instagramAvgLikes,omitempty"`
	InstagramAvgComments int64 `json:"instagramAvgComments,omitempty"`

	TikTokFollowers   int64 `json:"tiktokFollowers,omitempty"`
	TikTokAvgViews    int64 `json:"tiktokAvgViews,omitempty"`
	TikTokAvgLikes    int64 `json:"tiktokAvgLikes,omitempty"`
	TikTokAvgComments int64 `json:"tiktokAvgComments,omitempty"`

	TwitterFollowers      int64 `json:"twitterFollowers,omitempty"`
	TwitterAvgImpressions int64 `json:"twitterAvgImpressions,omitempty"`
	TwitterAvgEngagements int64 `json:"twitterAvgEngagements,omitempty"`

	LinkedInFollowers      int64 `json:"linkedinFollowers,omitempty"`
	LinkedInAvgImpressions int64 `json:"linkedinAvgImpressions,omitempty"`
	LinkedInAvgEngagements int64 `json:"linkedinAvgEngagements,omitempty"`

	BlogSubscribers float64 `json:"blogNewsletterSubscribers,omitempty"`
	BlogOpenRate    float64 `json:"blogNewsletterOpenRate,omitempty"`
	BlogCTR         float64 `json:"blogNewsletterCTR,omitempty"`

	ContentType string      `json:"contentType,omitempty"`
	UsageRights UsageRights `json:"usageRights,omitempty"`
}

type CustomService struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	DeliveryHours float64   `json:"deliveryHours"`
	PrepHours     float64   `json:"prepHours"`
}

type PricingSession struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Expenses       []Expense       `json:"expenses"`
	IncomeSettings IncomeSettings  `json:"incomeSettings"`
	Creator        CreatorProfile  `json:"creatorData"`
	RateTier       RateTier        `json:"selectedRateTier"`
	Markup         float64         `json:"markup"`
	CustomServices []CustomService `json:"customServices"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type PaymentDetails struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	RoutingNumber string `json:"routingNumber"`
	SwiftBic      string `json:"swiftBic"`
	PaypalEmail   string `json:"paypalEmail"`
	VenmoHandle   string `json:"venmoHandle"`
	ZelleInfo     string `json:"zelleInfo"`
	CryptoWallet  string `json:"cryptoWallet"`
	CryptoNetwork string `json:"cryptoNetwork"`
	OtherDetails  string `json:"otherDetails"`
}

type ContractSections struct {
	ScopeOfWork       bool `json:"scopeOfWork"`
	Deliverables      bool `json:"deliverables"`
	Timeline          bool `json:"timeline"`
	Payment           bool `json:"payment"`
	Rights            bool `json:"rights"`
	Revisions         bool `json:"revisions"`
	Cancellation      bool `json:"cancellation"`
	Confidentiality   bool `json:"confidentiality"`
	Jurisdiction      bool `json:"jurisdiction"`
	Liability         bool `json:"liability"`
	DisputeResolution bool `json:"disputeResolution"`
}

type ConfidentialitySubclauses struct {
	DefineConfidential bool `json:"defineConfidential"`
	Exclusions         bool `json:"exclusions"`
	PortfolioRights    bool `json:"portfolioRights"`
	SocialMediaRights  bool `json:"socialMediaRights"`
	TeamDisclosure     bool `json:"teamDisclosure"`
	Duration           bool `json:"duration"`
	ReturnMaterials    bool `json:"returnMaterials"`
	BreachRemedies     bool `json:"breachRemedies"`
}

type CustomClause struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

type ContractData struct {
	ContractType ContractType `json:"contractType"`

	ClientName  string `json:"clientName"`
	ProjectName string `json:"projectName"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	CreatorName string `json:"creatorName"`

	CreatorAddress string `json:"creatorAddress"`
	CreatorCity    string `json:"creatorCity"`
	CreatorState   string `json:"creatorState"`
	CreatorZip     string `json:"creatorZip"`
	CreatorCountry string `json:"creatorCountry"`
	CreatorEmail   string `json:"creatorEmail"`
	CreatorPhone   string `json:"creatorPhone"`

	ClientAddress string `json:"clientAddress"`
	ClientCity    string `json:"clientCity"`
	ClientState   string `json:"clientState"`
	ClientZip     string `json:"clientZip"`
	ClientCountry string `json:"clientCountry"`
	ClientEmail   string `json:"clientEmail"`
	ClientPhone   string `json:"clientPhone"`

	Sections ContractSections `json:"sections"`

	ScopeOfWork     string         `json:"scopeOfWork"`
	Deliverables    string         `json:"deliverables"`
	Timeline        string         `json:"timeline"`
	PaymentTerms    string         `json:"paymentTerms"`
	PaymentAmount   string         `json:"paymentAmount"`
	PaymentSchedule string         `json:"paymentSchedule"`
	Currency        string         `json:"currency"`
	PaymentMethod   PaymentMethod  `json:"paymentMethod"`
	PaymentDetails  PaymentDetails `json:"paymentDetails"`

	RightsUsage         string `json:"rightsUsage"`
	RevisionsLimit      string `json:"revisionsLimit"`
	RevisionsTimeline   string `json:"revisionsTimeline"`
	RevisionsDefinition string `json:"revisionsDefinition"`
	RevisionsOverflow   string `json:"revisionsOverflow"`
	RevisionsAdditional string `json:"revisionsAdditional"`

	CancellationNotice     string `json:"cancellationNotice"`
	CancellationFee        string `json:"cancellationFee"`
	CancellationAdditional string `json:"cancellationAdditional"`

	ConfidentialityTerms string `json:"confidentialityTerms"`
	GoverningLaw         string `json:"governingLaw"`
	JurisdictionVenue    string `json:"jurisdictionVenue"`

	IndependentContractorTerms string `json:"independentContractorTerms"`
	LiabilityLimit             string `json:"liabilityLimit"`
	IndemnificationTerms       string `json:"indemnificationTerms"`
	WarrantyTerms              string `json:"warrantyTerms"`

	DisputeResolutionTerms string `json:"disputeResolutionTerms"`
	ForceMajeureTerms      string `json:"forceMajeureTerms"`

	ConfidentialitySubclauses ConfidentialitySubclauses `json:"confidentialitySubclauses"`
	ConfidentialityDuration   string                    `json:"confidentialityDuration"`
	PortfolioUsageDelay       string                    `json:"portfolioUsageDelay"`

	CustomClauses []CustomClause `json:"customClauses"`

	Version string `json:"version"`
}

type Contract struct {
	ID        uuid.UUID    `json:"id"`
	Data      ContractData `json:"data"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
