// Command send-webhook signs a JSON payload the way Shopify does and posts
// it to a local webhook endpoint. Useful for exercising the server without a
// real storefront.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/qudous44/tiktok-server/internal/domain"
	"github.com/qudous44/tiktok-server/internal/domain/signature"
)

func main() {
	var (
		url     = flag.String("url", "http://localhost:8080/webhooks/shopify/orders-create", "webhook endpoint url")
		secret  = flag.String("secret", "", "shared webhook secret used to sign the body")
		payload = flag.String("payload", "", "path to a JSON order payload file")
	)
	flag.Parse()

	if *payload == "" {
		fmt.Fprintln(os.Stderr, "missing -payload")
		os.Exit(2)
	}

	body, err := os.ReadFile(*payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read payload: %v\n", err)
		os.Exit(2)
	}

	req, err := http.NewRequest(http.MethodPost, *url, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "new request: %v\n", err)
		os.Exit(2)
	}
	req.Header.Set("Content-Type", "application/json")
	if *secret != "" {
		req.Header.Set(domain.SignatureHeader, signature.Sign(body, *secret))
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "post: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s\n%s\n", resp.Status, respBody)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		os.Exit(1)
	}
}
