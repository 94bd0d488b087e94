// Package catalog provides the service catalog: a finite set of known
// consultation services with display titles and descriptions.
package catalog

// Service is one bookable consultation program.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Defaults returns the built-in catalog in display order.
func Defaults() []Service {
	return []Service{
		{
			ID:          "weightLoss",
			Title:       "Weight Loss",
			Description: "Personalized plans to help you lose weight naturally and sustainably.",
		},
		{
			ID:          "weightGain",
			Title:       "Weight Gain",
			Description: "Nutrition-rich programs to support healthy weight gain and strength.",
		},
		{
			ID:          "skinCareNutrition",
			Title:       "Skin Care Nutrition",
			Description: "Glow from the inside out with customized skin nutrition advice.",
		},
		{
			ID:          "kidsCare",
			Title:       "Kids Care",
			Description: "Balanced nutrition guidance to support growing children.",
		},
		{
			ID:          "immunityHealth",
			Title:       "Immunity Health",
			Description: "Boost your immunity with targeted nutrition and wellness tips.",
		},
		{
			ID:          "heartHealth",
			Title:       "Heart Health",
			Description: "Support cardiovascular health with heart-friendly diets and coaching.",
		},
		{
			ID:          "fatCheckup",
			Title:       "Fat Checkup",
			Description: "Assess body composition and get a plan tailored to your results.",
		},
		{
			ID:          "wholeBodyCheckup",
			Title:       "Whole Body Checkup",
			Description: "A complete nutritional review of your overall health.",
		},
		{
			ID:          "onlineConsultation",
			Title:       "Online Consultation",
			Description: "Connect with experts from the comfort of your home for guidance.",
		},
	}
}

// TitleFor resolves a service id to its display title within the given
// catalog. Unknown ids are shown as-is so stale bookings still render.
func TitleFor(services []Service, id string) string {
	for _, svc := range services {
		if svc.ID == id {
			return svc.Title
		}
	}
	return id
}

// Titles maps a booking's service ids to display titles, preserving order.
func Titles(services []Service, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, TitleFor(services, id))
	}
	return out
}
