package discovery

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"snippets/internal/domain"
)

type rsdAPI struct {
	Name    string `xml:"name,attr"`
	BlogID  string `xml:"blogID,attr"`
	APILink string `xml:"apiLink,attr"`
}

type rsdDocument struct {
	APIs []rsdAPI `xml:"service>apis>api"`
}

// parseRSD picks the Blogger entry of a Really Simple Discovery document.
// That entry is the one every MetaWeblog and WordPress server exposes.
// Relative api links are resolved against base, the RSD document's URL.
func parseRSD(data []byte, base string) (domain.RemoteEndpoint, error) {
	var doc rsdDocument
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Strict = false
	d.CharsetReader = func(_ string, in io.Reader) (io.Reader, error) { return in, nil }
	if err := d.Decode(&doc); err != nil {
		return domain.RemoteEndpoint{}, fmt.Errorf("%w: rsd: %v", domain.ErrMalformedResponse, err)
	}

	for _, api := range doc.APIs {
		if api.Name != "Blogger" {
			continue
		}
		if strings.TrimSpace(api.APILink) == "" {
			continue
		}
		link := resolve(base, api.APILink)
		hint := domain.HintMetaWeblog
		if isWordPressEndpoint(link) {
			hint = domain.HintWordPress
		}
		return domain.RemoteEndpoint{Hint: hint, URL: link, BlogID: strings.TrimSpace(api.BlogID)}, nil
	}
	return domain.RemoteEndpoint{}, fmt.Errorf("%w: rsd lists no Blogger api", domain.ErrNoPublishingEndpoint)
}

func isWordPressEndpoint(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return strings.Contains(link, "/xmlrpc.php")
	}
	return path.Base(u.Path) == "xmlrpc.php"
}
