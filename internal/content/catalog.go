// Package content holds the fixed copy shown by the screens: health tips,
// supported languages, risk guidance, the demo account and the about page.
package content

import "mediexplain/internal/models"

type Tip struct {
	Icon     string `json:"icon"`
	Category string `json:"category"`
	Text     string `json:"text"`
	Color    string `json:"color"`
}

var tips = []Tip{
	{Icon: "🥗", Category: "Diet", Text: "Increase leafy vegetables — spinach, kale, and fenugreek help with low hemoglobin.", Color: "#16a34a"},
	{Icon: "🏃", Category: "Exercise", Text: "Walk 30 minutes daily — improves blood sugar and cholesterol simultaneously.", Color: "#0d9488"},
	{Icon: "💧", Category: "Hydration", Text: "Drink 8–10 glasses of water daily to support kidney function and circulation.", Color: "#2563eb"},
	{Icon: "😴", Category: "Sleep", Text: "Poor sleep raises blood sugar. Aim for 7–8 hours of quality sleep every night.", Color: "#7c3aed"},
}

// Tips returns the general health tips shown under the dashboard.
func Tips() []Tip {
	out := make([]Tip, len(tips))
	copy(out, tips)
	return out
}

type Language struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// 지원 언어 (분석 결과 번역 대상)
var languages = []Language{
	{Code: "en", Label: "English"},
	{Code: "hi", Label: "Hindi"},
	{Code: "bn", Label: "Bengali"},
	{Code: "ta", Label: "Tamil"},
	{Code: "te", Label: "Telugu"},
	{Code: "mr", Label: "Marathi"},
}

const DefaultLanguage = "en"

func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

func GetLanguage(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// Guidance is the one-line advice shown on a result card.
type Guidance struct {
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	Message string `json:"message"`
}

var guidance = map[models.RiskLevel]Guidance{
	models.RiskHigh:   {Icon: "🔴", Color: "#dc2626", Message: "Please consult your doctor as soon as possible."},
	models.RiskMedium: {Icon: "🟡", Color: "#d97706", Message: "Schedule a doctor appointment this week."},
	models.RiskLow:    {Icon: "🟢", Color: "#16a34a", Message: "Results look mostly normal. Keep up healthy habits!"},
	models.RiskInfo:   {Icon: "ℹ️", Color: "#0d9488", Message: "This is a clinical/consultation report. No lab values detected."},
}

// GuidanceFor falls back to the INFO card for a missing or unknown level.
func GuidanceFor(risk models.RiskLevel) Guidance {
	return guidance[risk.OrDefault(models.RiskInfo)]
}

// DemoUser is the fixed account used by the one-click demo login.
var DemoUser = models.User{Name: "Demo User", Email: "demo@mediexplain.ai"}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type About struct {
	Mission  string    `json:"mission"`
	Features []Feature `json:"features"`
	FAQ      []FAQ     `json:"faq"`
}

var about = About{
	Mission: "No patient should leave a clinic confused about their own health.",
	Features: []Feature{
		{Title: "Smart OCR", Description: "Reads typed PDFs, scanned images, and clinical documents with high accuracy."},
		{Title: "Medical NER", Description: "Detects lab values, medications, diagnoses, and abnormalities automatically."},
		{Title: "Risk Assessment", Description: "Compares values against gender-specific reference ranges and flags severity."},
		{Title: "Plain Language", Description: "Converts medical jargon into simple, friendly explanations for any patient."},
		{Title: "Multilingual", Description: "Supports English, Hindi, Bengali, Tamil, Telugu, and Marathi."},
		{Title: "Private & Secure", Description: "Reports are processed locally. No data is stored permanently without consent."},
	},
	FAQ: []FAQ{
		{Question: "Is MediExplain AI a replacement for a doctor?", Answer: "No. It is an educational tool that helps you understand your reports. It does not provide medical diagnosis or treatment. Always consult a qualified healthcare professional."},
		{Question: "What types of reports does it support?", Answer: "Lab test reports (CBC, LFT, KFT, lipid profile, diabetes panel, thyroid), clinical consultation letters, discharge summaries, and prescriptions in PDF, JPG, and PNG format."},
		{Question: "What if OCR misreads my report?", Answer: "Upload high-resolution, clear images for best accuracy. The app shows the extracted text so you can verify what was read from your document."},
		{Question: "Can I use it for family members?", Answer: "Yes! You can analyze reports for any family member. Just enter the correct age and gender for accurate reference range comparisons."},
	},
}

func GetAbout() About {
	return about
}
