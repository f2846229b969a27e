// Package network provides the HTTP client shared by outbound requests.
package network

import (
	"net/http"
	"time"

	"github.com/layervue/create-layervue/constant"
)

// Client is used for the release check. Requests are short so the timeout is tight.
var Client = &http.Client{
	Timeout:   10 * time.Second,
	Transport: &userAgent{next: http.DefaultTransport},
}

type userAgent struct {
	next http.RoundTripper
}

func (u *userAgent) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", constant.App+"/"+constant.Version)
	return u.next.RoundTrip(req)
}
