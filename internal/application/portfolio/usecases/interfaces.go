package usecases

// MarkdownRenderer converts trusted-source markdown into sanitized HTML for
// the public detail view.
type MarkdownRenderer interface {
	RenderToSafeHTML(markdown string) (string, error)
}
