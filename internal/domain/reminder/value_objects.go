package reminder

import "strings"

const (
	MaxTitleLength       = 255
	MaxRedirectURLLength = 1024
)

type Title struct {
	text string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Title{}, ErrEmptyTitle
	}
	if len(t) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{text: t}, nil
}

func (t Title) String() string { return t.text }

type RedirectURL struct {
	url string
}

func NewRedirectURL(s string) (RedirectURL, error) {
	u := strings.TrimSpace(s)
	if u == "" {
		return RedirectURL{}, ErrEmptyRedirectURL
	}
	if len(u) > MaxRedirectURLLength {
		return RedirectURL{}, ErrRedirectURLTooLong
	}
	return RedirectURL{url: u}, nil
}

func (r RedirectURL) String() string { return r.url }
