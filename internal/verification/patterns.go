package verification

import "regexp"

// Detection tables are kept here as static configuration so evaluator logic
// never has to change when a new pattern, domain, or keyword is added.

// botEmailPatterns match local parts commonly produced by signup scripts.
// The first match scores; multiple matches do not stack.
var botEmailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[a-zA-Z0-9]+\d{4,}@`), // alphanumeric run ending in 4+ digits
	regexp.MustCompile(`^test\d+@`),
	regexp.MustCompile(`^user\d+@`),
	regexp.MustCompile(`^bot\d+@`),
	regexp.MustCompile(`^fake\d+@`),
	regexp.MustCompile(`^temp\d+@`),
	regexp.MustCompile(`^[a-zA-Z]{1,3}\d{5,}@`),
}

// disposableDomains are throwaway mail providers. Accounts behind them are
// not necessarily bots, but they are never worth trusting at signup.
var disposableDomains = map[string]struct{}{
	"mailinator.com":    {},
	"guerrillamail.com": {},
	"10minutemail.com":  {},
	"tempmail.org":      {},
	"throwaway.email":   {},
	"temp-mail.org":     {},
}

// suspiciousTLDs stand in for a real domain-age lookup: these TLDs are
// overwhelmingly used by newly registered throwaway domains. See
// StaticTLDChecker for the pluggable interface around this table.
var suspiciousTLDs = []string{".tk", ".ml", ".ga", ".cf", ".pw", ".xyz"}

// botUserAgentKeywords are case-insensitive substrings of automation stacks.
var botUserAgentKeywords = []string{
	"bot",
	"crawler",
	"spider",
	"scraper",
	"headless",
	"phantom",
	"selenium",
	"automation",
	"puppeteer",
	"playwright",
}

// headlessSignatures are exact product tokens emitted by headless browsers.
// They stack with the keyword check: a UA can fire both.
var headlessSignatures = []string{"HeadlessChrome", "PhantomJS"}

// fakePhonePrefixes are area-code-equivalent prefixes of known fake numbers.
var fakePhonePrefixes = []string{"555", "111", "000"}
