package orderservices

import (
	"context"
	"net/http"

	"github.com/dghubble/oauth1"
	"golang.org/x/oauth2"
)

// Credentials sign outgoing requests. They are handed to every Submit call so
// no session state lives in the package.
type Credentials interface {
	Client(ctx context.Context, base *http.Client) *http.Client
}

// OAuth1Credentials sign requests with the consumer key and access token pair
// issued by E*TRADE.
type OAuth1Credentials struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

func (c *OAuth1Credentials) Client(ctx context.Context, base *http.Client) *http.Client {
	config := oauth1.NewConfig(c.ConsumerKey, c.ConsumerSecret)
	token := oauth1.NewToken(c.AccessToken, c.AccessTokenSecret)

	client := config.Client(context.WithValue(ctx, oauth1.HTTPClient, base), token)
	client.Timeout = base.Timeout

	return client
}

func NewOAuth1Credentials(consumerKey, consumerSecret, accessToken, accessTokenSecret string) *OAuth1Credentials {
	return &OAuth1Credentials{
		ConsumerKey:       consumerKey,
		ConsumerSecret:    consumerSecret,
		AccessToken:       accessToken,
		AccessTokenSecret: accessTokenSecret,
	}
}

// TokenCredentials send a static bearer token, as used by gateways fronting
// the order api and by the local sandbox.
type TokenCredentials struct {
	source oauth2.TokenSource
}

func (c *TokenCredentials) Client(ctx context.Context, base *http.Client) *http.Client {
	client := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, base), c.source)
	client.Timeout = base.Timeout

	return client
}

func NewTokenCredentials(token string) *TokenCredentials {
	return &TokenCredentials{
		source: oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   "Bearer",
		}),
	}
}
