package yamlite

// Parse scans input in a single forward pass and reports structure and
// content to h. See Parser.Parse for the error contract.
func Parse(input []byte, h Handler, opts ...Option) error {
	p, err := NewParser(input, h, opts...)
	if err != nil {
		return err
	}
	return p.Parse()
}

// Valid reports whether input parses without error.
func Valid(input []byte, opts ...Option) bool {
	return Parse(input, NopHandler{}, opts...) == nil
}
