package micropub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"snippets/internal/adapters/transport"
	"snippets/internal/domain"
	"snippets/pkg/log"
)

// ExchangeCode trades an IndieAuth authorization code for an access token.
// Token endpoints answer either with JSON or with a form-encoded body.
func (c *Client) ExchangeCode(ctx context.Context, tokenEndpoint string, code domain.AuthorizationCode) (domain.TokenGrant, error) {
	var form transport.Form
	form.Add("grant_type", "authorization_code")
	form.Add("code", code.Code)
	form.Add("client_id", code.ClientID)
	form.Add("redirect_uri", code.RedirectURI)
	form.Add("me", code.Me)

	res, err := c.http.Do(ctx, transport.Request{
		Method:      http.MethodPost,
		URL:         tokenEndpoint,
		Body:        form.Bytes(),
		ContentType: formContentType,
		Accept:      jsonContentType,
	})
	if err != nil {
		return domain.TokenGrant{}, err
	}

	grant := parseGrant(res)
	if strings.TrimSpace(grant.AccessToken) == "" {
		log.GlobalWarnCtx(ctx, "token endpoint returned no access token", "endpoint", tokenEndpoint)
		return domain.TokenGrant{}, domain.ErrInvalidOrMissingToken
	}
	return grant, nil
}

func parseGrant(res *transport.Response) domain.TokenGrant {
	var grant domain.TokenGrant
	if strings.HasPrefix(res.Header.Get("Content-Type"), "application/json") || json.Valid(res.Body) {
		if err := json.Unmarshal(res.Body, &grant); err == nil {
			return grant
		}
	}
	values, err := url.ParseQuery(string(res.Body))
	if err != nil {
		return domain.TokenGrant{}
	}
	return domain.TokenGrant{
		AccessToken: values.Get("access_token"),
		Me:          values.Get("me"),
		Scope:       values.Get("scope"),
	}
}

// RequestLoginEmail asks Micro.blog to mail a sign-in link to email. The
// link points back at redirectURL carrying a temporary token.
func (c *Client) RequestLoginEmail(ctx context.Context, timelineEndpoint, email, appName, redirectURL string) error {
	id := domain.Identity{TimelineEndpoint: timelineEndpoint}
	_, err := c.http.Do(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    id.TimelinePath("account/signin"),
		Query: url.Values{
			"email":        {email},
			"app_name":     {appName},
			"redirect_url": {redirectURL},
		},
	})
	return err
}

// ExchangeTemporaryToken turns the token from a sign-in email into a
// permanent one.
func (c *Client) ExchangeTemporaryToken(ctx context.Context, timelineEndpoint, temporary string) (string, error) {
	if strings.TrimSpace(temporary) == "" {
		return "", domain.ErrInvalidOrMissingToken
	}

	id := domain.Identity{TimelineEndpoint: timelineEndpoint}
	res, err := c.http.Do(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    id.TimelinePath("account/verify"),
		Query:  url.Values{"token": {temporary}},
		Accept: jsonContentType,
	})
	if err != nil {
		return "", err
	}

	var payload struct {
		Token string `json:"token"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(res.Body, &payload); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if payload.Token == "" {
		return "", domain.ErrInvalidOrMissingToken
	}
	return payload.Token, nil
}
