package mock

import "github.com/fwojciec/sitegist"

var _ sitegist.Parser = (*Parser)(nil)

// Parser is a mock implementation of sitegist.Parser.
type Parser struct {
	ParseFn func(html string, currentURL string) (*sitegist.ParseResult, error)
}

func (p *Parser) Parse(html string, currentURL string) (*sitegist.ParseResult, error) {
	return p.ParseFn(html, currentURL)
}
