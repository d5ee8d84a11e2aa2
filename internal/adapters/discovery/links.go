package discovery

import (
	"net/http"
	"regexp"
	"strings"
)

// Pages are scanned as raw text rather than parsed: blog themes ship
// markup no strict parser accepts, and only <link> elements matter here.
var linkTagRe = regexp.MustCompile(`(?is)<link\b[^>]*>`)

// findLink returns the href of the first <link> whose rel contains rel.
func findLink(html, rel string) string {
	for _, tag := range linkTagRe.FindAllString(html, -1) {
		rels, ok := attr(tag, "rel")
		if !ok || !hasToken(rels, rel) {
			continue
		}
		if href, ok := attr(tag, "href"); ok && href != "" {
			return strings.TrimSpace(href)
		}
	}
	return ""
}

// attr reads one attribute of a tag. The name matches case-insensitively
// and must be followed by '='. Quoted values end at the matching quote;
// unquoted values end at whitespace or '>'.
func attr(tag, name string) (string, bool) {
	lower := asciiLower(tag)
	name = asciiLower(name)

	for from := 0; from < len(lower); {
		i := strings.Index(lower[from:], name)
		if i < 0 {
			return "", false
		}
		i += from
		from = i + len(name)

		if i == 0 || !isSpace(lower[i-1]) {
			continue
		}
		j := skipSpaces(lower, i+len(name))
		if j >= len(lower) || lower[j] != '=' {
			continue
		}
		j = skipSpaces(lower, j+1)
		if j >= len(tag) {
			return "", true
		}

		if q := tag[j]; q == '"' || q == '\'' {
			end := strings.IndexByte(tag[j+1:], q)
			if end < 0 {
				return tag[j+1:], true
			}
			return tag[j+1 : j+1+end], true
		}
		end := j
		for end < len(tag) && !isSpace(tag[end]) && tag[end] != '>' {
			end++
		}
		return tag[j:end], true
	}
	return "", false
}

// linkHeader finds rel in RFC 8288 Link headers.
func linkHeader(h http.Header, rel string) string {
	for _, line := range h.Values("Link") {
		for _, part := range strings.Split(line, ",") {
			segs := strings.Split(part, ";")
			target := strings.TrimSpace(segs[0])
			if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
				continue
			}
			for _, param := range segs[1:] {
				key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
				if !ok || !strings.EqualFold(strings.TrimSpace(key), "rel") {
					continue
				}
				if hasToken(strings.Trim(strings.TrimSpace(value), `"`), rel) {
					return target[1 : len(target)-1]
				}
			}
		}
	}
	return ""
}

func hasToken(list, token string) bool {
	for _, f := range strings.Fields(list) {
		if strings.EqualFold(f, token) {
			return true
		}
	}
	return false
}

// asciiLower keeps byte offsets aligned with the input, which
// strings.ToLower does not guarantee for non-ASCII text.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func skipSpaces(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}
