package verification

import "strings"

// DomainAgeChecker reports whether a domain looks newly registered. The
// production implementation would consult a WHOIS/domain-age service; the
// default is a static TLD heuristic.
type DomainAgeChecker interface {
	IsRecentlyRegistered(domain string) bool
}

// StaticTLDChecker flags domains under TLDs that are dominated by freshly
// registered throwaway domains. It is the stand-in until a real lookup
// service is wired.
type StaticTLDChecker struct{}

func (StaticTLDChecker) IsRecentlyRegistered(domain string) bool {
	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(domain, tld) {
			return true
		}
	}
	return false
}
