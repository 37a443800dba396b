package domain

// Disposition names the terminal state of one processed webhook.
type Disposition string

const (
	// DispositionForwarded means the event was delivered to the events API.
	DispositionForwarded Disposition = "forwarded"

	// DispositionDryRun means the event was built but not sent (local mode).
	DispositionDryRun Disposition = "dry_run"

	// DispositionSkippedTest means the order was a test order.
	DispositionSkippedTest Disposition = "skipped_test"

	// DispositionSkippedCancelled means the order was cancelled or refunded.
	DispositionSkippedCancelled Disposition = "skipped_cancelled"

	// DispositionFailed marks a delivery record for a forward attempt that
	// errored. It never appears in a webhook result; the error does.
	DispositionFailed Disposition = "failed"
)

// Skipped reports whether the disposition is an intentional non-forward.
func (d Disposition) Skipped() bool {
	return d == DispositionSkippedTest || d == DispositionSkippedCancelled
}
