package domain

import "errors"

var (
	// ErrMissingConfig indicates required configuration values are absent at startup.
	ErrMissingConfig = errors.New("missing required configuration")

	// ErrInvalidSignature indicates the webhook signature is absent or does not
	// match the digest computed over the raw body.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrMalformedPayload indicates the webhook body could not be decoded as an order.
	ErrMalformedPayload = errors.New("malformed webhook payload")

	// ErrInvalidPrice indicates a line item price could not be parsed as a number.
	// The whole order is rejected rather than forwarding a NaN value downstream.
	ErrInvalidPrice = errors.New("invalid line item price")

	// ErrUpstreamHTTP indicates the events API responded with a non-2xx status.
	ErrUpstreamHTTP = errors.New("events api http error")

	// ErrUpstreamRejected indicates a 2xx response whose application-level
	// status code was nonzero.
	ErrUpstreamRejected = errors.New("events api rejected event")

	// ErrEndpointsExhausted indicates every candidate endpoint failed.
	ErrEndpointsExhausted = errors.New("all events api endpoints failed")
)
