package ports

// BrowserOpener opens a URL in the user's browser.
type BrowserOpener interface {
	Open(url string) error
}
