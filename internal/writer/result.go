package writer

import "fmt"

// ResultKind tags the outcome of a generation call.
type ResultKind int

const (
	// ResultOK carries generated text.
	ResultOK ResultKind = iota
	// ResultInputMissing means the caller gave nothing to work with.
	ResultInputMissing
	// ResultConfigMissing means no provider credential is configured.
	ResultConfigMissing
	// ResultUpstreamFailed means the model call itself failed.
	ResultUpstreamFailed
)

// Result is the tagged outcome of a generate or refine call. The
// front ends have exactly one place to show output (the document
// pane), so Render collapses every branch into a plain string at the
// boundary; tests can still assert on each branch separately.
type Result struct {
	Kind     ResultKind
	Text     string
	Guidance string
	Err      error
}

// Render returns the string the document pane shows.
func (r Result) Render() string {
	switch r.Kind {
	case ResultOK:
		return r.Text
	case ResultInputMissing:
		return r.Guidance
	case ResultConfigMissing:
		return "Error: no API key configured. Please add it to your .env file."
	case ResultUpstreamFailed:
		return fmt.Sprintf("Error %s: %v", r.Guidance, r.Err)
	default:
		return ""
	}
}

func ok(text string) Result {
	return Result{Kind: ResultOK, Text: text}
}

func inputMissing(guidance string) Result {
	return Result{Kind: ResultInputMissing, Guidance: guidance}
}

func configMissing() Result {
	return Result{Kind: ResultConfigMissing}
}

func upstreamFailed(action string, err error) Result {
	return Result{Kind: ResultUpstreamFailed, Guidance: action, Err: err}
}
