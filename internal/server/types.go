package server

// CalculateRequest is the JSON body accepted by the /calculate endpoint.
type CalculateRequest struct {
	// Op is the operation to perform (add, sub, mul, quo, rem, divmod,
	// pow, cmp, sum).
	Op string `json:"op"`
	// Operands holds the decimal operand strings.
	Operands []string `json:"operands"`
}

// SumRequest is the JSON body accepted by the /sum endpoint.
type SumRequest struct {
	// Operands holds the decimal operand strings to add together.
	Operands []string `json:"operands"`
}

// Response represents the standardized JSON response for a calculation request.
type Response struct {
	// Op is the operation that was performed.
	Op string `json:"op"`
	// Values holds the decimal result(s). It is omitted if an error occurred.
	Values []string `json:"values,omitempty"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
	// Error contains the error message if the calculation failed.
	Error string `json:"error,omitempty"`
}

// ErrorResponse represents the standardized JSON response for an API error.
type ErrorResponse struct {
	// Error is the short error code or status text.
	Error string `json:"error"`
	// Message is a descriptive error message.
	Message string `json:"message,omitempty"`
}
