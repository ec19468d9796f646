package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed for numbers written without a country code.
const DefaultRegion = "US"

// NormalizePhone formats phone as E.164. Input that does not parse is
// returned trimmed so that e164 validation reports it.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	parsedNumber, err := phonenumbers.Parse(phone, DefaultRegion)
	if err != nil {
		return phone
	}
	return phonenumbers.Format(parsedNumber, phonenumbers.E164)
}
