package pricing

import (
	"math"

	"example.com/creator-rates/backend/internal/models"
)

// RecomputeEngagement пересчитывает процент вовлеченности по метрикам площадки.
// Формула зависит от площадки; результат округляется до двух знаков.
func RecomputeEngagement(profile models.CreatorProfile) float64 {
	var rate float64

	switch profile.PrimaryPlatform {
	case models.PlatformYouTube:
		rate = ratio(float64(profile.AvgViews), float64(profile.Subscribers))
	case models.PlatformInstagram:
		engagement := float64(profile.InstagramAvgLikes + profile.InstagramAvgComments)
		rate = ratio(engagement, float64(profile.InstagramFollowers))
	case models.PlatformTikTok:
		rate = ratio(float64(profile.TikTokAvgViews), float64(profile.TikTokFollowers))
	case models.PlatformTwitter:
		rate = ratio(float64(profile.TwitterAvgEngagements), float64(profile.TwitterAvgImpressions))
	case models.PlatformLinkedIn:
		rate = ratio(float64(profile.LinkedInAvgEngagements), float64(profile.LinkedInAvgImpressions))
	case models.PlatformBlog:
		rate = (profile.BlogOpenRate / 100) * (profile.BlogCTR / 100) * 100
	default:
		return 0
	}

	return round2(rate)
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator * 100
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
