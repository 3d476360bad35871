// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/spatialtools/pomwalk/internal/issue"
	"github.com/spatialtools/pomwalk/internal/verify"
	"github.com/spatialtools/pomwalk/pkg/pom"
	"github.com/spatialtools/pomwalk/pkg/types"
	"github.com/spatialtools/pomwalk/pkg/walker"
)

// ServiceError is an error that carries optional rendering information for
// the CLI layer. Always create via newServiceError to enforce the
// Err-must-be-non-nil invariant.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
	// StyledMessage is the optional pre-rendered styled error text.
	StyledMessage string
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id, styledMessage string) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{
		Err:           err,
		IssueID:       issueID,
		StyledMessage: styledMessage,
	}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// classifyError maps a failure to an issue catalog ID. Zero means no entry.
func classifyError(err error) issue.Id {
	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.Issue != 0 {
		return ae.Issue
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return issue.DescriptorNotFoundId
	case errors.Is(err, walker.ErrCyclicReference):
		return issue.CyclicReferenceId
	case errors.Is(err, walker.ErrUnresolvedPlaceholder):
		return issue.UnresolvedPlaceholderId
	case errors.Is(err, pom.ErrParse):
		return issue.DescriptorParseErrorId
	case errors.Is(err, verify.ErrVerificationFailed):
		return issue.VerificationFailedId
	default:
		return 0
	}
}

// walkFailure attaches an operation, the descriptor and suggestions to a walk
// error.
func walkFailure(err error, descriptor string) error {
	id := classifyError(err)
	ec := issue.NewErrorContext().
		WithOperation("walk descriptor").
		WithResource(descriptor).
		WithIssue(id)

	switch id {
	case issue.DescriptorNotFoundId:
		ec.WithSuggestions(
			"Pass the descriptor path as an argument: pomwalk path/to/pom.xml",
			"Set 'descriptor' in the config file",
		)
	case issue.DescriptorParseErrorId:
		ec.WithSuggestion("Check that the file is well-formed XML with a <project> root element")
	case issue.CyclicReferenceId:
		ec.WithSuggestion("Check the <parent> and <dependency> records of the descriptors in the chain")
	case issue.UnresolvedPlaceholderId:
		ec.WithSuggestions(
			"Define the property in a <properties> block of the descriptor or one of its parents",
			"Use --lenient to substitute empty text for undefined placeholders",
		)
	}

	return ec.Wrap(err).BuildError()
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// renderServiceError prints the styled message, then the issue help section
// when verbose output is enabled.
func renderServiceError(stderr io.Writer, svcErr *ServiceError, verbose bool, style string) {
	if svcErr == nil {
		return
	}

	if svcErr.StyledMessage != "" {
		fmt.Fprint(stderr, svcErr.StyledMessage)
	}

	if !verbose || svcErr.IssueID == 0 {
		return
	}

	if catalogEntry := issue.Get(svcErr.IssueID); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render(style)
		if renderErr != nil {
			slog.Warn("failed to render issue catalog entry", "issueID", svcErr.IssueID, "error", renderErr)
		} else {
			fmt.Fprint(stderr, rendered)
		}
	}
}

// fail renders err on stderr and returns an ExitError carrying code. Cobra's
// own error and usage output is silenced since the error is already shown.
func (app *App) fail(cmd *cobra.Command, err error, code types.ExitCode) error {
	s := sessionFromContext(cmd.Context())
	styled := fmt.Sprintf("%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, s.verbose))
	svcErr := newServiceError(err, classifyError(err), styled)
	renderServiceError(app.stderr, svcErr, s.verbose, s.colorScheme())

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: code, Err: svcErr}
}
