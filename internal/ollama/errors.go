package ollama

import "errors"

var (
	// ErrUnreachable indicates the Ollama server could not be connected to.
	// User-actionable: the server may not be running or the model not pulled.
	ErrUnreachable = errors.New("could not connect to Ollama server; ensure it is running (ollama serve) and the model is pulled")

	// ErrRequest indicates the server was reached but the call failed
	// (non-2xx status, undecodable reply).
	ErrRequest = errors.New("ollama request failed")
)
