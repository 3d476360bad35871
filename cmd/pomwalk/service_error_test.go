// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/spatialtools/pomwalk/internal/issue"
	"github.com/spatialtools/pomwalk/internal/verify"
	"github.com/spatialtools/pomwalk/pkg/pom"
	"github.com/spatialtools/pomwalk/pkg/walker"
)

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{
			name: "missing descriptor",
			err:  &pom.ParseError{Path: "pom.xml", Cause: fs.ErrNotExist},
			want: issue.DescriptorNotFoundId,
		},
		{
			name: "malformed descriptor",
			err:  &pom.ParseError{Path: "pom.xml", Cause: errors.New("XML syntax error")},
			want: issue.DescriptorParseErrorId,
		},
		{
			name: "cycle",
			err:  fmt.Errorf("parent: %w", &walker.CyclicReferenceError{Chain: []string{"a.pom", "b.pom", "a.pom"}}),
			want: issue.CyclicReferenceId,
		},
		{
			name: "undefined placeholder",
			err:  &walker.UnresolvedPlaceholderError{Text: "${gt.version}", Names: []string{"gt.version"}},
			want: issue.UnresolvedPlaceholderId,
		},
		{
			name: "verification",
			err:  &verify.VerificationFailedError{Artifacts: []string{"a.jar"}},
			want: issue.VerificationFailedId,
		},
		{
			name: "actionable error issue wins",
			err: issue.NewErrorContext().
				WithOperation("load configuration").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fs.ErrNotExist).
				BuildError(),
			want: issue.ConfigLoadFailedId,
		},
		{
			name: "unknown",
			err:  errors.New("boom"),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := classifyError(tt.err); got != tt.want {
				t.Errorf("classifyError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWalkFailure(t *testing.T) {
	t.Parallel()

	cause := &walker.UnresolvedPlaceholderError{Text: "${gt.version}", Names: []string{"gt.version"}}
	err := walkFailure(cause, "pom.xml")

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("walkFailure() = %T, want *issue.ActionableError", err)
	}
	if ae.Operation != "walk descriptor" || ae.Resource != "pom.xml" {
		t.Errorf("operation/resource = %q/%q", ae.Operation, ae.Resource)
	}
	if ae.Issue != issue.UnresolvedPlaceholderId {
		t.Errorf("issue = %d, want %d", ae.Issue, issue.UnresolvedPlaceholderId)
	}
	if len(ae.Suggestions) != 2 {
		t.Errorf("suggestions = %v, want 2", ae.Suggestions)
	}
	if !errors.Is(err, walker.ErrUnresolvedPlaceholder) {
		t.Error("walkFailure() should keep the cause in the chain")
	}
}

func TestNewServiceError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	svcErr := newServiceError(cause, issue.DescriptorNotFoundId, "styled")
	if svcErr.Error() != "boom" {
		t.Errorf("Error() = %q", svcErr.Error())
	}
	if !errors.Is(svcErr, cause) {
		t.Error("ServiceError should unwrap to its cause")
	}

	defer func() {
		if recover() == nil {
			t.Error("newServiceError(nil) should panic")
		}
	}()
	newServiceError(nil, 0, "")
}

func TestRenderServiceError(t *testing.T) {
	t.Parallel()

	svcErr := newServiceError(errors.New("boom"), issue.DescriptorNotFoundId, "Error: boom\n")

	var quiet bytes.Buffer
	renderServiceError(&quiet, svcErr, false, "dark")
	if quiet.String() != "Error: boom\n" {
		t.Errorf("non-verbose output = %q", quiet.String())
	}

	var loud bytes.Buffer
	renderServiceError(&loud, svcErr, true, "notty")
	if !strings.HasPrefix(loud.String(), "Error: boom\n") || loud.Len() <= len("Error: boom\n") {
		t.Errorf("verbose output should append the catalog entry, got %q", loud.String())
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")
	if got := formatErrorForDisplay(plain, false); got != "boom" {
		t.Errorf("plain = %q", got)
	}

	ae := issue.NewErrorContext().
		WithOperation("walk descriptor").
		WithResource("pom.xml").
		WithSuggestion("Try again").
		Wrap(plain).
		BuildError()
	got := formatErrorForDisplay(ae, true)
	for _, want := range []string{"failed to walk descriptor: pom.xml: boom", "Try again", "Error chain:"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatted error missing %q:\n%s", want, got)
		}
	}
}
