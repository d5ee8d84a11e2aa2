package usecases

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"snippets/internal/domain"
	"snippets/pkg/log"
)

// EmailSignInUseCase signs the timeline account in to Micro.blog without a
// password: the user gets a link by email whose temporary token is then
// traded for a permanent one.
type EmailSignInUseCase struct {
	signin      EmailSignIn
	session     *Session
	appName     string
	redirectURL string
}

// NewEmailSignInUseCase creates an EmailSignInUseCase. redirectURL is where
// the emailed link sends the temporary token.
func NewEmailSignInUseCase(signin EmailSignIn, session *Session, appName, redirectURL string) *EmailSignInUseCase {
	return &EmailSignInUseCase{signin: signin, session: session, appName: appName, redirectURL: redirectURL}
}

// Request mails a sign-in link to email.
func (uc *EmailSignInUseCase) Request(ctx context.Context, email string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return fmt.Errorf("%w: email %q", domain.ErrInvalidArgument, email)
	}
	if err := uc.signin.RequestLoginEmail(ctx, uc.endpoint(), addr.Address, uc.appName, uc.redirectURL); err != nil {
		return err
	}
	log.GlobalInfoCtx(ctx, "sign-in email requested")
	return nil
}

// Verify trades the temporary token from the email for a permanent one and
// installs it as the timeline identity. The publishing slot is untouched.
func (uc *EmailSignInUseCase) Verify(ctx context.Context, temporary string) (domain.Identity, error) {
	endpoint := uc.endpoint()
	token, err := uc.signin.ExchangeTemporaryToken(ctx, endpoint, temporary)
	if err != nil {
		return domain.Identity{}, err
	}

	id := domain.MicroblogIdentity(token, "")
	id.TimelineEndpoint = endpoint
	uc.session.SetTimeline(id)
	log.GlobalInfoCtx(ctx, "signed in to timeline", "endpoint", endpoint)
	return id, nil
}

func (uc *EmailSignInUseCase) endpoint() string {
	if ep := uc.session.Timeline().TimelineEndpoint; ep != "" {
		return ep
	}
	return domain.DefaultTimelineEndpoint
}
