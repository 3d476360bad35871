// SPDX-License-Identifier: MPL-2.0

package verify

import (
	"bytes"
	"context"
	"crypto/md5"  //nolint:gosec // repository sidecars are md5 digests, not a security boundary
	"crypto/sha1" //nolint:gosec // repository sidecars are sha1 digests
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/charmbracelet/log"
)

const (
	// StatusOK means every present sidecar matched.
	StatusOK Status = "ok"
	// StatusFailed means a digest did not match or a signature did not verify.
	StatusFailed Status = "failed"
	// StatusUnverified means no sidecar was available to check.
	StatusUnverified Status = "unverified"

	// CheckSHA1 compares the artifact against its .sha1 sidecar.
	CheckSHA1 CheckKind = "sha1"
	// CheckMD5 compares the artifact against its .md5 sidecar.
	CheckMD5 CheckKind = "md5"
	// CheckSignature verifies the .asc detached signature.
	CheckSignature CheckKind = "signature"

	// maxSidecarSize bounds digest and signature files.
	maxSidecarSize = 64 * 1024

	armoredSignaturePrefix = "-----BEGIN PGP SIGNATURE-----"
)

// ErrVerificationFailed is the sentinel error wrapped by VerificationFailedError.
var ErrVerificationFailed = errors.New("artifact verification failed")

type (
	// Status is the outcome of a check or of all checks on one artifact.
	Status string

	// CheckKind names a sidecar check.
	CheckKind string

	// Check is the result of one sidecar check.
	Check struct {
		Kind   CheckKind `json:"kind"`
		Status Status    `json:"status"`
		// Detail explains a failure, e.g. the expected and actual digests.
		Detail string `json:"detail,omitempty"`
	}

	// Outcome collects the checks run against one artifact.
	Outcome struct {
		Artifact string  `json:"artifact"`
		Checks   []Check `json:"checks"`
	}

	// Summary is the result of verifying a whole classpath.
	Summary struct {
		Outcomes []Outcome `json:"outcomes"`
	}

	// VerificationFailedError lists the artifacts that failed verification.
	VerificationFailedError struct {
		Artifacts []string
	}

	// Options configures a Verifier.
	Options struct {
		// Checksums enables the .sha1 and .md5 checks.
		Checksums bool
		// Keyring enables .asc signature checks when non-empty.
		Keyring openpgp.EntityList
	}

	// Verifier checks artifacts against their repository sidecars.
	Verifier struct {
		checksums bool
		keyring   openpgp.EntityList
	}

	digest struct {
		kind CheckKind
		ext  string
		new  func() hash.Hash
	}
)

var digests = []digest{
	{kind: CheckSHA1, ext: ".sha1", new: sha1.New},
	{kind: CheckMD5, ext: ".md5", new: md5.New},
}

// Error implements the error interface.
func (e *VerificationFailedError) Error() string {
	return fmt.Sprintf("%d artifact(s) failed verification: %s", len(e.Artifacts), strings.Join(e.Artifacts, ", "))
}

// Unwrap returns ErrVerificationFailed for errors.Is() compatibility.
func (e *VerificationFailedError) Unwrap() error { return ErrVerificationFailed }

// New creates a Verifier.
func New(opts Options) *Verifier {
	return &Verifier{checksums: opts.Checksums, keyring: opts.Keyring}
}

// LoadKeyring reads an armored or binary OpenPGP public keyring.
func LoadKeyring(path string) (openpgp.EntityList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}
	defer func() { _ = f.Close() }()

	entities, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		if _, seekErr := f.Seek(0, io.SeekStart); seekErr != nil {
			return nil, fmt.Errorf("failed to reset keyring: %w", seekErr)
		}
		entities, err = openpgp.ReadKeyRing(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read keyring %s: %w", path, err)
		}
	}

	if len(entities) == 0 {
		return nil, fmt.Errorf("no keys found in keyring %s", path)
	}
	return entities, nil
}

// Enabled reports whether any check is configured.
func (v *Verifier) Enabled() bool {
	return v.checksums || len(v.keyring) > 0
}

// VerifyAll checks every artifact in order. The returned error is non-nil only
// for cancellation; verification failures are reported through the Summary.
func (v *Verifier) VerifyAll(ctx context.Context, artifacts []string) (*Summary, error) {
	logger := log.FromContext(ctx)
	summary := &Summary{Outcomes: make([]Outcome, 0, len(artifacts))}

	for _, artifact := range artifacts {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("verification canceled: %w", ctx.Err())
		default:
		}

		outcome := v.Verify(artifact)
		logger.Debug("Verified artifact", "path", artifact, "status", outcome.Status())
		summary.Outcomes = append(summary.Outcomes, outcome)
	}

	return summary, nil
}

// Verify runs the configured checks against one artifact.
func (v *Verifier) Verify(artifact string) Outcome {
	out := Outcome{Artifact: artifact}

	if v.checksums {
		for _, d := range digests {
			if check, ok := checkDigest(artifact, d); ok {
				out.Checks = append(out.Checks, check)
			}
		}
	}

	if len(v.keyring) > 0 {
		if check, ok := v.checkSignature(artifact); ok {
			out.Checks = append(out.Checks, check)
		}
	}

	return out
}

// checkDigest compares artifact with its sidecar. ok is false when the sidecar
// does not exist.
func checkDigest(artifact string, d digest) (Check, bool) {
	expected, err := readSidecar(artifact + d.ext)
	if errors.Is(err, os.ErrNotExist) {
		return Check{}, false
	}
	if err != nil {
		return Check{Kind: d.kind, Status: StatusFailed, Detail: err.Error()}, true
	}

	// Sidecars hold the hex digest, optionally followed by a file name.
	fields := strings.Fields(string(expected))
	if len(fields) == 0 {
		return Check{Kind: d.kind, Status: StatusFailed, Detail: "empty checksum file"}, true
	}
	want := strings.ToLower(fields[0])

	got, err := hashFile(artifact, d.new())
	if err != nil {
		return Check{Kind: d.kind, Status: StatusFailed, Detail: err.Error()}, true
	}

	if got != want {
		return Check{
			Kind:   d.kind,
			Status: StatusFailed,
			Detail: fmt.Sprintf("checksum mismatch: expected %s, got %s", want, got),
		}, true
	}
	return Check{Kind: d.kind, Status: StatusOK}, true
}

func (v *Verifier) checkSignature(artifact string) (Check, bool) {
	sig, err := readSidecar(artifact + ".asc")
	if errors.Is(err, os.ErrNotExist) {
		return Check{}, false
	}
	if err != nil {
		return Check{Kind: CheckSignature, Status: StatusFailed, Detail: err.Error()}, true
	}

	f, err := os.Open(artifact)
	if err != nil {
		return Check{Kind: CheckSignature, Status: StatusFailed, Detail: err.Error()}, true
	}
	defer func() { _ = f.Close() }()

	var signer *openpgp.Entity
	if bytes.HasPrefix(bytes.TrimSpace(sig), []byte(armoredSignaturePrefix)) {
		signer, err = openpgp.CheckArmoredDetachedSignature(v.keyring, f, bytes.NewReader(sig), nil)
	} else {
		signer, err = openpgp.CheckDetachedSignature(v.keyring, f, bytes.NewReader(sig), nil)
	}
	if err != nil {
		return Check{
			Kind:   CheckSignature,
			Status: StatusFailed,
			Detail: fmt.Sprintf("signature verification failed: %v", err),
		}, true
	}

	return Check{Kind: CheckSignature, Status: StatusOK, Detail: "signed by " + signer.PrimaryKey.KeyIdString()}, true
}

func readSidecar(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxSidecarSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) > maxSidecarSize {
		return nil, fmt.Errorf("%s exceeds %d bytes", path, maxSidecarSize)
	}
	return data, nil
}

func hashFile(path string, h hash.Hash) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open artifact: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash artifact: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Status folds the artifact's checks: failed if any check failed, ok if at
// least one passed, otherwise unverified.
func (o Outcome) Status() Status {
	status := StatusUnverified
	for _, c := range o.Checks {
		switch c.Status {
		case StatusFailed:
			return StatusFailed
		case StatusOK:
			status = StatusOK
		}
	}
	return status
}

// Count returns how many outcomes have the given status.
func (s *Summary) Count(status Status) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status() == status {
			n++
		}
	}
	return n
}

// Err returns a *VerificationFailedError naming every failed artifact, or nil.
func (s *Summary) Err() error {
	var failed []string
	for _, o := range s.Outcomes {
		if o.Status() == StatusFailed {
			failed = append(failed, o.Artifact)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &VerificationFailedError{Artifacts: failed}
}
