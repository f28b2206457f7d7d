package pricing

import "example.com/creator-rates/backend/internal/models"

// ExperienceMultiplier возвращает множитель уровня опыта для диджитал-креаторов.
func ExperienceMultiplier(profile models.CreatorProfile) float64 {
	if profile.Type != models.CreatorTypeDigital {
		return 1
	}

	switch profile.ExperienceLevel {
	case models.ExperienceJunior:
		return 0.85
	case models.ExperienceSenior:
		return 1.20
	default:
		return 1
	}
}

// TermsMultiplier возвращает множитель условий проекта для диджитал-креаторов.
func TermsMultiplier(profile models.CreatorProfile) float64 {
	if profile.Type != models.CreatorTypeDigital {
		return 1
	}

	switch profile.ProjectTerms {
	case models.TermsExtraRevisions:
		return 1.15
	case models.TermsRush:
		return 1.25
	case models.TermsRushRevisions:
		return 1.40
	default:
		return 1
	}
}

// AudienceSize возвращает размер аудитории по выбранной площадке.
func AudienceSize(profile models.CreatorProfile) float64 {
	switch profile.PrimaryPlatform {
	case models.PlatformYouTube:
		return float64(profile.Subscribers)
	case models.PlatformInstagram:
		return float64(profile.InstagramFollowers)
	case models.PlatformTikTok:
		return float64(profile.TikTokFollowers)
	case models.PlatformTwitter:
		return float64(profile.TwitterFollowers)
	case models.PlatformLinkedIn:
		return float64(profile.LinkedInFollowers)
	case models.PlatformBlog:
		return profile.BlogSubscribers
	default:
		return 0
	}
}

// AudienceMultiplier возвращает ступенчатый множитель размера аудитории для контент-креаторов.
func AudienceMultiplier(profile models.CreatorProfile) float64 {
	if profile.Type != models.CreatorTypeContent || profile.PrimaryPlatform == "" {
		return 1
	}

	size := AudienceSize(profile)
	switch {
	case size >= 1000000:
		return 1.5
	case size >= 500000:
		return 1.4
	case size >= 100000:
		return 1.3
	case size >= 50000:
		return 1.2
	case size >= 10000:
		return 1.1
	case size >= 5000:
		return 1.05
	case size >= 1000:
		return 1.02
	default:
		return 1
	}
}

// EngagementMultiplier возвращает множитель вовлеченности с порогами, зависящими от площадки.
func EngagementMultiplier(profile models.CreatorProfile) float64 {
	if profile.Type != models.CreatorTypeContent || profile.PrimaryPlatform == "" {
		return 1
	}

	rate := profile.EngagementRate
	if rate <= 0 {
		return 1
	}

	switch profile.PrimaryPlatform {
	case models.PlatformYouTube:
		switch {
		case rate >= 50:
			return 1.2
		case rate >= 20:
			return 1.15
		case rate >= 10:
			return 1.08
		}
	case models.PlatformInstagram:
		switch {
		case rate >= 10:
			return 1.18
		case rate >= 7:
			return 1.15
		case rate >= 3:
			return 1.08
		}
	case models.PlatformTikTok:
		switch {
		case rate >= 200:
			return 1.25
		case rate >= 100:
			return 1.15
		case rate >= 50:
			return 1.08
		}
	case models.PlatformTwitter, models.PlatformLinkedIn:
		switch {
		case rate >= 5:
			return 1.15
		case rate >= 1:
			return 1.08
		}
	case models.PlatformBlog:
		switch {
		case rate >= 3:
			return 1.15
		case rate >= 1:
			return 1.08
		}
	}

	return 1
}

// RightsMultiplier возвращает множитель прав использования контента.
func RightsMultiplier(rights models.UsageRights) float64 {
	switch rights {
	case models.RightsPaidAd:
		return 2.5
	case models.RightsExclusive:
		return 5.0
	default:
		return 1.0
	}
}
