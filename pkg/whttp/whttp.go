// Package whttp fetches remote line lists over HTTP with retries.
package whttp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/html"
)

const USER_AGENT = "epicurve/1.0 (+https://github.com/sw33tLie/epicurve)"

// MaxBodySize caps how much of a response is read.
const MaxBodySize = 32 << 20

var ErrStatus = errors.New("unexpected HTTP status")

type WHTTPHeader struct {
	Name  string
	Value string
}

type WHTTPReq struct {
	URL     string
	Method  string
	Headers []WHTTPHeader
}

type WHTTPRes struct {
	StatusCode  int
	ContentType string
	HTTPTitle   string
	Body        []byte
}

// NewClient returns a retrying client. Retry logging is discarded.
func NewClient(retries int, timeout time.Duration, proxy string) (*retryablehttp.Client, error) {
	client := retryablehttp.NewClient()
	client.Logger = log.New(io.Discard, "", 0)
	client.RetryMax = retries
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = timeout

	if proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %v", err)
		}
		client.HTTPClient.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	}
	return client, nil
}

func SendHTTPRequest(ctx context.Context, wReq *WHTTPReq, client *retryablehttp.Client) (*WHTTPRes, error) {
	method := wReq.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, wReq.URL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set("Accept", "text/csv, text/tab-separated-values, application/json, text/html, */*")
	for _, h := range wReq.Headers {
		req.Header.Set(h.Name, h.Value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, err
	}

	wRes := &WHTTPRes{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}
	if isHTML(wRes.ContentType) {
		if title, ok := getHTMLTitle(body); ok {
			wRes.HTTPTitle = strings.ToValidUTF8(strings.Join(strings.Fields(title), " "), "")
		}
	}
	return wRes, nil
}

// Fetch GETs rawURL and fails on any non-2xx status.
func Fetch(ctx context.Context, rawURL string, client *retryablehttp.Client) (*WHTTPRes, error) {
	res, err := SendHTTPRequest(ctx, &WHTTPReq{URL: rawURL}, client)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return res, fmt.Errorf("%s: %w %d", rawURL, ErrStatus, res.StatusCode)
	}
	return res, nil
}

// FileName names a fetched document so that its extension selects the right
// parser: the URL path's own extension when it has one, otherwise one
// derived from the content type, falling back to .csv.
func FileName(rawURL, contentType string) string {
	base := "download"
	if u, err := url.Parse(rawURL); err == nil {
		if b := path.Base(u.Path); b != "/" && b != "." && b != "" {
			base = b
		}
		if path.Ext(base) != "" {
			return base
		}
	}

	mt, _, _ := mime.ParseMediaType(contentType)
	switch {
	case strings.Contains(mt, "spreadsheetml"):
		return base + ".xlsx"
	case strings.HasSuffix(mt, "json"):
		return base + ".json"
	case isHTML(mt):
		return base + ".html"
	case mt == "text/tab-separated-values":
		return base + ".tsv"
	}
	return base + ".csv"
}

func isHTML(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "text/html")
}

func isTitleElement(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "title"
}

func traverse(n *html.Node) (string, bool) {
	if isTitleElement(n) {
		if n.FirstChild != nil {
			return n.FirstChild.Data, true
		}
		return "", true
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		result, ok := traverse(c)
		if ok {
			return result, ok
		}
	}

	return "", false
}

func getHTMLTitle(body []byte) (string, bool) {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return "", false
	}
	return traverse(doc)
}
