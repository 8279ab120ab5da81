package yamlite

import "fmt"

// Option configures a Parser.
type Option func(*Parser) error

// MaxDepth returns an Option that sets the maximum nesting depth for
// the parser, counting the synthetic root context. Input that nests
// deeper fails with a ParseError rather than growing the stack.
//
// The depth n must be a positive integer. The default is 32.
func MaxDepth(n int) Option {
	return func(p *Parser) error {
		if n <= 0 {
			return fmt.Errorf("yamlite: max depth must be a positive integer")
		}
		p.maxDepth = n
		return nil
	}
}
