package fraud

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// scamKeywords are phrases that frequently appear in marketplace scams
var scamKeywords = []string{
	// Financial scams
	"guaranteed returns", "get rich quick", "100% profit", "risk-free investment",
	"instant money", "no investment needed", "work from home earn lakhs",
	"limited offer", "act now", "urgent", "expire soon", "hurry",
	"congratulations you won", "claim your prize", "lottery winner",

	// Payment scams
	"send money first", "advance payment", "pay upfront", "deposit required",
	"transfer immediately", "urgent payment", "wire transfer only",
	"cash only deal", "no refund", "non-refundable deposit",

	// Fake products
	"original 100%", "authentic guaranteed", "first copy", "master copy",
	"aaa quality", "999 pure", "imported usa uk", "branded duplicate",

	// Personal info fishing
	"send otp", "share bank details", "your account number", "credit card details",
	"verify your identity", "confirm personal details", "send documents",
	"aadhaar number", "pan card copy", "password required",

	// Too good to be true
	"99% discount", "free delivery worldwide", "lowest price guaranteed",
	"factory outlet", "clearance sale", "below mrp", "wholesale rate",

	// Suspicious contact methods
	"whatsapp only", "telegram me", "call immediately", "sms this number",
	"don't message here", "contact on different number", "private chat",

	// Suspicious behavior
	"need it urgently", "quick sale needed", "must sell today",
	"serious buyers only", "no time wasters", "cash in hand only",
	"meet in person mandatory", "no online payment", "only cash accepted",
}

var urgencyWords = []string{
	"urgent", "hurry", "quick", "immediately", "today only", "limited time", "expire",
}

var (
	suspiciousURLPattern = regexp.MustCompile(`(?i)(bit\.ly|tinyurl|goo\.gl|t\.co|ow\.ly|shortened\.link|click\.here|verify\.your|secure\.payment|account\.update)`)
	phonePattern         = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3,4}[-.\s]?\d{4}`)
)

const (
	multiplePhonesThreshold = 3
	repetitiveRunLength     = 5
	excessiveCapsRatio      = 0.5
	minDescriptionLength    = 20
	unrealisticDiscount     = 0.7
	urgencyWordThreshold    = 2
)

// Detector evaluates listing content into matched fraud signals. Each check
// is independent; the output order is fixed so reports are reproducible.
type Detector struct {
	highValuePrice float64
	newAccountDays int
}

// NewDetector creates a detector. Zero-valued knobs fall back to the
// defaults (price 10000, 7 days).
func NewDetector(highValuePrice float64, newAccountDays int) *Detector {
	if highValuePrice <= 0 {
		highValuePrice = 10000
	}
	if newAccountDays <= 0 {
		newAccountDays = 7
	}
	return &Detector{highValuePrice: highValuePrice, newAccountDays: newAccountDays}
}

// Evaluate runs every signal check against a listing content snapshot
func (d *Detector) Evaluate(content ListingContent) []Signal {
	signals := []Signal{}

	rawText := content.Title + " " + content.Description
	fullText := strings.ToLower(rawText)

	// 1. Scam keywords
	var found []string
	for _, keyword := range scamKeywords {
		if strings.Contains(fullText, keyword) {
			found = append(found, keyword)
		}
	}
	if len(found) > 0 {
		weight := len(found) * 10
		if weight > 40 {
			weight = 40
		}
		preview := found
		if len(preview) > 3 {
			preview = preview[:3]
		}
		signals = append(signals, Signal{
			Type:     "scam_keywords",
			Severity: SeverityHigh,
			Weight:   weight,
			Message:  "Contains suspicious keywords: " + strings.Join(preview, ", "),
		})
	}

	// 2. Shortened or phishing-style URLs
	if suspiciousURLPattern.MatchString(fullText) {
		signals = append(signals, Signal{
			Type:     "suspicious_url",
			Severity: SeverityHigh,
			Weight:   25,
			Message:  "Contains shortened or suspicious URLs that may lead to phishing sites",
		})
	}

	// 3. Multiple phone numbers
	phones := uniqueStrings(phonePattern.FindAllString(fullText, -1))
	if len(phones) >= multiplePhonesThreshold {
		signals = append(signals, Signal{
			Type:     "multiple_contacts",
			Severity: SeverityMedium,
			Weight:   15,
			Message:  fmt.Sprintf("Contains %d different phone numbers (spam indicator)", len(phones)),
		})
	}

	// 4. Repetitive character runs
	if hasRepetitiveRun(fullText, repetitiveRunLength) {
		signals = append(signals, Signal{
			Type:     "repetitive_spam",
			Severity: SeverityMedium,
			Weight:   10,
			Message:  "Contains repetitive characters often used in spam (e.g., !!!!!!, ????)",
		})
	}

	// 5. Excessive capitalization (checked against the raw text)
	if capsRatio, letters := capitalization(rawText); letters > 20 && capsRatio > excessiveCapsRatio {
		signals = append(signals, Signal{
			Type:     "excessive_caps",
			Severity: SeverityLow,
			Weight:   10,
			Message:  "Excessive use of capital letters (spam/scam indicator)",
		})
	}

	// 6. Unrealistic discount against the original price
	if content.Price > 0 && content.OriginalPrice > 0 {
		discount := (content.OriginalPrice - content.Price) / content.OriginalPrice
		if discount > unrealisticDiscount {
			signals = append(signals, Signal{
				Type:     "unrealistic_pricing",
				Severity: SeverityHigh,
				Weight:   20,
				Message:  fmt.Sprintf("Suspiciously high discount (%.0f%%) - often used in scams", discount*100),
			})
		}
	}

	// 7. Missing or minimal imagery
	if content.ImageCount == 0 {
		signals = append(signals, Signal{
			Type:     "no_images",
			Severity: SeverityMedium,
			Weight:   15,
			Message:  "No product images provided (red flag for scams)",
		})
	} else if content.ImageCount == 1 {
		signals = append(signals, Signal{
			Type:     "single_image",
			Severity: SeverityLow,
			Weight:   5,
			Message:  "Only one image provided (legitimate sellers usually provide multiple angles)",
		})
	}

	// 8. Vague description
	if len(content.Description) < minDescriptionLength {
		signals = append(signals, Signal{
			Type:     "minimal_description",
			Severity: SeverityMedium,
			Weight:   10,
			Message:  "Very short description (scammers often provide minimal details)",
		})
	}

	// 9. Brand-new account listing a high-value item
	if content.Price > d.highValuePrice && !content.SellerCreatedAt.IsZero() {
		accountAge := time.Since(content.SellerCreatedAt)
		daysOld := int(accountAge.Hours() / 24)
		if daysOld < d.newAccountDays {
			signals = append(signals, Signal{
				Type:     "new_seller_high_value",
				Severity: SeverityHigh,
				Weight:   20,
				Message:  fmt.Sprintf("New account (%d days old) selling high-value item", daysOld),
			})
		}
	}

	// 10. Urgency and pressure tactics
	urgencyCount := 0
	for _, word := range urgencyWords {
		if strings.Contains(fullText, word) {
			urgencyCount++
		}
	}
	if urgencyCount >= urgencyWordThreshold {
		signals = append(signals, Signal{
			Type:     "urgency_pressure",
			Severity: SeverityHigh,
			Weight:   15,
			Message:  "Uses pressure tactics to force quick decisions (common scam technique)",
		})
	}

	return signals
}

// hasRepetitiveRun reports whether text contains n identical consecutive runes
func hasRepetitiveRun(text string, n int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

func capitalization(text string) (float64, int) {
	caps, letters := 0, 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				caps++
			}
		}
	}
	if letters == 0 {
		return 0, 0
	}
	return float64(caps) / float64(letters), letters
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var unique []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			unique = append(unique, v)
		}
	}
	return unique
}
