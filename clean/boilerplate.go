package clean

import "regexp"

// boilerplatePatterns target artifacts the TJSP e-filing system injects
// into every page: ESAJ verification footers, digital-signature
// attestations, page-number markers, case-number headers, court and
// jurisdiction header lines, and digital-signature-law notices. The
// patterns apply sequentially and independently; each targets its own
// boilerplate class.
var boilerplatePatterns = []string{
	`Para conferir o original, acesse o site https://esaj\.tjsp\.jus\.br/[^\n]*`,
	`Este documento é cópia do original, assinado digitalmente por [^\n]*`,
	`Para conferir.*?https://esaj\.tjsp\.jus\.br[^\n]*`,
	`Este documento.*?assinado digitalmente.*?[\n\r]`,
	`Página \d+ de \d+`,
	`Processo n[°º]?\s*\d+[\d.\-/]*`,
	`^TRIBUNAL.*[\n\r]`,
	`^PODER JUDICIÁRIO.*[\n\r]`,
	`^COMARCA DE.*[\n\r]`,
	`^FORO.*[\n\r]`,
	`DOCUMENTO ASSINADO DIGITALMENTE NOS TERMOS DA LEI.*[\n\r]`,
}

// BoilerplateStripper removes known recurring legal-document artifacts.
// Patterns compile once at construction and are reused across pages.
type BoilerplateStripper struct {
	patterns []*regexp.Regexp
}

// NewBoilerplateStripper compiles the boilerplate pattern list.
// Matching is case-insensitive; line anchors apply per line.
func NewBoilerplateStripper() *BoilerplateStripper {
	patterns := make([]*regexp.Regexp, len(boilerplatePatterns))
	for i, p := range boilerplatePatterns {
		patterns[i] = regexp.MustCompile(`(?im)` + p)
	}
	return &BoilerplateStripper{patterns: patterns}
}

// Strip returns text with all matches of the boilerplate patterns
// removed. Zero matches is the common case.
func (s *BoilerplateStripper) Strip(text string) string {
	for _, re := range s.patterns {
		text = re.ReplaceAllString(text, "")
	}
	return text
}
