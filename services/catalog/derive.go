package catalog

import (
	"net/url"
	"strings"
)

// Domain suffixes stripped when deriving a title; only the first match is
// removed.
var titleSuffixes = []string{".com", ".io", ".net", ".org", ".gg", ".app"}

var wordSeparators = strings.NewReplacer(".", " ", "-", " ", "_", " ")

// TitleFromURL turns a bare game URL into a readable title: hostname without
// the "www." prefix and the domain suffix, separators replaced by spaces and
// each word capitalized. When the input is not an absolute URL the raw input
// up to the first slash is returned instead.
func TitleFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return strings.SplitN(raw, "/", 2)[0]
	}

	domain := strings.TrimPrefix(u.Hostname(), "www.")
	for _, suffix := range titleSuffixes {
		if strings.HasSuffix(domain, suffix) {
			domain = strings.TrimSuffix(domain, suffix)
			break
		}
	}

	words := strings.Fields(wordSeparators.Replace(domain))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// ScreenshotURL derives a preview image URL from the game URL via the thum.io
// screenshot service. The browser fetches the image later; nothing is
// requested here. Returns "" when the input does not parse as an absolute URL.
func ScreenshotURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return "https://image.thum.io/get/width/600/crop/900/https://" + u.Hostname()
}
